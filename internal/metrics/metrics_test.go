package metrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMetrics(t *testing.T) {
	assert.NotNil(t, BatchesPublished)
	assert.NotNil(t, MessagesPublished)
	assert.NotNil(t, PublishErrors)
}
