package factory

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLLMProvider(t *testing.T) {
	p, err := NewLLMProvider(ProviderOpenAI, "", "", "gpt-4o-mini", time.Second)
	require.NoError(t, err)
	assert.Nil(t, p)

	p, err = NewLLMProvider(ProviderOpenAI, "sk-test", "", "gpt-4o-mini", time.Second)
	require.NoError(t, err)
	assert.NotNil(t, p)

	_, err = NewLLMProvider("gemini", "key", "", "m", time.Second)
	assert.Error(t, err)
}
