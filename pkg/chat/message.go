package chat

import (
	"fmt"
	"strings"

	goslack "github.com/slack-go/slack"
)

const maxBlockTextLength = 2900

// Interactivity action ids carried on button payloads. The request id
// rides in the button value and must survive the round trip.
const (
	ActionRetry  = "request_retry"
	ActionCancel = "request_cancel"
	ActionAnswer = "clarification_answer"
)

func requestURL(requestID, dashboardURL string) string {
	return fmt.Sprintf("%s/requests/%s", dashboardURL, requestID)
}

// BuildAcceptedMessage creates Block Kit blocks for a request-accepted
// notification.
func BuildAcceptedMessage(requestID, repository, dashboardURL string) []goslack.Block {
	text := fmt.Sprintf(":arrows_counterclockwise: *Working on it* — targeting `%s`. This may take a few minutes.\n<%s|View request>",
		repository, requestURL(requestID, dashboardURL))

	return []goslack.Block{
		goslack.NewSectionBlock(
			goslack.NewTextBlockObject(goslack.MarkdownType, text, false, false),
			nil, nil,
		),
	}
}

// BuildClarificationMessage creates blocks asking the user the agent's
// clarifying questions, with answer/retry/cancel affordances.
func BuildClarificationMessage(requestID string, questions []string, dashboardURL string) []goslack.Block {
	var b strings.Builder
	b.WriteString(":grey_question: *I need a bit more information:*\n")
	for _, q := range questions {
		fmt.Fprintf(&b, "• %s\n", q)
	}
	b.WriteString("\nReply in this thread to answer.")

	blocks := []goslack.Block{
		goslack.NewSectionBlock(
			goslack.NewTextBlockObject(goslack.MarkdownType, truncateForChat(b.String()), false, false),
			nil, nil,
		),
	}

	answerBtn := goslack.NewButtonBlockElement(ActionAnswer, requestID,
		goslack.NewTextBlockObject(goslack.PlainTextType, "Answer", false, false))
	retryBtn := goslack.NewButtonBlockElement(ActionRetry, requestID,
		goslack.NewTextBlockObject(goslack.PlainTextType, "Start Over", false, false))
	cancelBtn := goslack.NewButtonBlockElement(ActionCancel, requestID,
		goslack.NewTextBlockObject(goslack.PlainTextType, "Cancel", false, false))
	blocks = append(blocks, goslack.NewActionBlock("", answerBtn, retryBtn, cancelBtn))

	return blocks
}

// BuildPullRequestMessage creates blocks for a PR created/updated
// notification with the stats summary.
func BuildPullRequestMessage(requestID, prURL, summary string, filesModified int, costCents int, durationMs int64, updated bool, dashboardURL string) []goslack.Block {
	header := ":white_check_mark: *Pull request ready*"
	if updated {
		header = ":white_check_mark: *Pull request updated*"
	}
	text := fmt.Sprintf("%s\n<%s|Open pull request>", header, prURL)
	if summary != "" {
		text += "\n\n" + truncateForChat(summary)
	}
	text += fmt.Sprintf("\n\n_%d files · $%d.%02d · %ds_",
		filesModified, costCents/100, costCents%100, durationMs/1000)

	blocks := []goslack.Block{
		goslack.NewSectionBlock(
			goslack.NewTextBlockObject(goslack.MarkdownType, text, false, false),
			nil, nil,
		),
	}

	btn := goslack.NewButtonBlockElement("", "",
		goslack.NewTextBlockObject(goslack.PlainTextType, "View request", false, false))
	btn.URL = requestURL(requestID, dashboardURL)
	blocks = append(blocks, goslack.NewActionBlock("", btn))

	return blocks
}

// BuildCompletedMessage creates blocks for an analysis-only completion
// (no code changes).
func BuildCompletedMessage(requestID, summary, dashboardURL string) []goslack.Block {
	text := ":white_check_mark: *Done* — no code changes were needed."
	if summary != "" {
		text += "\n\n" + truncateForChat(summary)
	}
	text += fmt.Sprintf("\n<%s|View request>", requestURL(requestID, dashboardURL))

	return []goslack.Block{
		goslack.NewSectionBlock(
			goslack.NewTextBlockObject(goslack.MarkdownType, text, false, false),
			nil, nil,
		),
	}
}

// BuildErrorMessage creates blocks for a terminal error with the retry
// affordance.
func BuildErrorMessage(requestID, reason, dashboardURL string) []goslack.Block {
	text := fmt.Sprintf(":x: *Something went wrong*\n%s", truncateForChat(reason))

	blocks := []goslack.Block{
		goslack.NewSectionBlock(
			goslack.NewTextBlockObject(goslack.MarkdownType, text, false, false),
			nil, nil,
		),
	}

	retryBtn := goslack.NewButtonBlockElement(ActionRetry, requestID,
		goslack.NewTextBlockObject(goslack.PlainTextType, "Retry", false, false))
	detailsBtn := goslack.NewButtonBlockElement("", "",
		goslack.NewTextBlockObject(goslack.PlainTextType, "View Details", false, false))
	detailsBtn.URL = requestURL(requestID, dashboardURL)
	blocks = append(blocks, goslack.NewActionBlock("", retryBtn, detailsBtn))

	return blocks
}

func truncateForChat(text string) string {
	if len(text) <= maxBlockTextLength {
		return text
	}
	return text[:maxBlockTextLength] + "\n\n_... (truncated — view the full request page)_"
}
