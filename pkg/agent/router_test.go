package agent

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoute_HintWins(t *testing.T) {
	hint := &Selection{Kind: "runner", Provider: "anthropic", Model: "opus"}
	labels := []string{"engine:stub:openai"}
	defaults := Selection{Kind: "stub", Provider: "google"}

	assert.Equal(t, *hint, Route(hint, labels, defaults))
}

func TestRoute_LabelsBeatDefaults(t *testing.T) {
	labels := []string{"bug", "engine:runner:openai", "engine:stub"}
	defaults := Selection{Kind: "stub", Provider: "google"}

	sel := Route(nil, labels, defaults)
	assert.Equal(t, Selection{Kind: "runner", Provider: "openai"}, sel)
}

func TestRoute_LabelWithoutProvider(t *testing.T) {
	sel := Route(nil, []string{"engine:runner"}, Selection{Kind: "stub"})
	assert.Equal(t, Selection{Kind: "runner"}, sel)
}

func TestRoute_DefaultsWhenNothingElse(t *testing.T) {
	defaults := Selection{Kind: "runner", Provider: "anthropic", Model: "sonnet"}
	assert.Equal(t, defaults, Route(nil, []string{"bug", "p1"}, defaults))
	assert.Equal(t, defaults, Route(nil, nil, defaults))
}

func TestRoute_EmptyHintIgnored(t *testing.T) {
	defaults := Selection{Kind: "runner"}
	assert.Equal(t, defaults, Route(&Selection{}, nil, defaults))
}

func TestRoute_LowerPrioritySourcesNeverFillFields(t *testing.T) {
	// A hint without a provider must not inherit one from labels or
	// defaults.
	hint := &Selection{Kind: "runner"}
	labels := []string{"engine:runner:openai"}
	defaults := Selection{Kind: "runner", Provider: "google"}

	assert.Equal(t, *hint, Route(hint, labels, defaults))
}

func TestRoute_MalformedLabelSkipped(t *testing.T) {
	defaults := Selection{Kind: "runner"}
	assert.Equal(t, defaults, Route(nil, []string{"engine:"}, defaults))
}
