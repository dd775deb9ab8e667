package view

import (
	"strings"

	"stock-dashboard/internal/dto"
)

// Style is the visual treatment picked for a model or verdict value.
// Tone maps to a "tone-*" CSS class in the page stylesheet.
type Style struct {
	Tone string
	Icon string
}

var (
	styleGreen = Style{Tone: "green"}
	styleRed   = Style{Tone: "red"}
	styleAmber = Style{Tone: "amber"}
	styleBlue  = Style{Tone: "blue"}
)

var sentimentStyles = map[string]Style{
	dto.SentimentPositive: styleGreen,
	dto.SentimentNegative: styleRed,
	dto.SentimentNeutral:  styleAmber,
}

var decisionStyles = map[string]Style{
	dto.DecisionBuy:  styleGreen,
	dto.DecisionSell: styleRed,
	dto.DecisionHold: styleAmber,
}

var movementStyles = map[string]Style{
	dto.MovementUpward:   styleGreen,
	dto.MovementDownward: styleRed,
}

var verdictStyles = map[string]Style{
	dto.VerdictBullish: {Tone: "green", Icon: "📈"},
	dto.VerdictBearish: {Tone: "red", Icon: "📉"},
}

func SentimentStyle(sentiment string) Style {
	if s, ok := sentimentStyles[strings.ToLower(sentiment)]; ok {
		return s
	}
	return styleAmber
}

func DecisionStyle(recommendation string) Style {
	if s, ok := decisionStyles[strings.ToUpper(recommendation)]; ok {
		return s
	}
	return styleAmber
}

func MovementStyle(direction string) Style {
	if s, ok := movementStyles[direction]; ok {
		return s
	}
	return styleBlue
}

func VerdictStyle(verdict string) Style {
	if s, ok := verdictStyles[strings.ToUpper(verdict)]; ok {
		return s
	}
	return Style{Tone: "amber", Icon: "➡️"}
}
