package classifier

import (
	"strings"

	"bigo-sim/src/model"
)

// Classifier assigns a complexity tag to each recognizable line of a
// pseudo-code snippet. It is stateless; a single instance is safe for
// concurrent use.
type Classifier struct{}

// New creates a new classifier
func New() *Classifier {
	return &Classifier{}
}

// Classify splits text on newlines, trims each line, discards empty lines,
// and tags every line that matches a rule. Lines matching no rule emit no
// CodeLine at all; the line counter only advances for emitted lines.
func (c *Classifier) Classify(text string) []model.CodeLine {
	var lines []model.CodeLine

	lineNo := 0
	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}

		tag, ok := classifyLine(line)
		if !ok {
			continue
		}

		lineNo++
		lines = append(lines, model.CodeLine{
			Number: lineNo,
			Text:   line,
			Tag:    tag,
		})
	}

	return lines
}

// classifyLine applies the rule set in fixed priority order; the first
// matching rule wins. These are literal substring heuristics, not parsing:
// there is no nesting awareness, no variable binding, no control-flow graph.
func classifyLine(line string) (model.ComplexityTag, bool) {
	switch {
	case strings.HasPrefix(line, "for"):
		switch {
		case strings.Contains(line, "..<n"):
			return model.TagLinear, true
		case strings.Contains(line, "n*n"):
			return model.TagQuadratic, true
		default:
			return model.TagConstant, true
		}

	case strings.HasPrefix(line, "while"):
		if strings.Contains(line, "n") {
			return model.TagLinear, true
		}
		return model.TagConstant, true

	case strings.HasPrefix(line, "if"):
		return model.TagConstant, true

	case strings.Contains(line, "="):
		return model.TagConstant, true

	case strings.Contains(line, "func"):
		switch {
		case strings.Contains(line, "sort"):
			return model.TagLinearithmic, true
		case strings.Contains(line, "binarySearch"):
			return model.TagLogarithmic, true
		default:
			return model.TagConstant, true
		}
	}

	return "", false
}
