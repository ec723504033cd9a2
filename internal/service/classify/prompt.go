package classify

import (
	"regexp"
	"strings"

	"github.com/heartmarshall/incident-desk/internal/domain"
)

// Prompt is sent with every image. The answer format is parsed by Parse.
const Prompt = `Analyze this emergency situation image and respond in this exact format without any asterisks or bullet points:
TITLE: Write a clear, brief title
TYPE: Choose one (Theft, Fire Outbreak, Medical Emergency, Natural Disaster, Violence, or Other)
DESCRIPTION: Write a clear, concise description`

var (
	titleLine       = regexp.MustCompile(`(?m)^\s*TITLE:[ \t]*(.+)$`)
	typeLine        = regexp.MustCompile(`(?m)^\s*TYPE:[ \t]*(.+)$`)
	descriptionLine = regexp.MustCompile(`(?m)^\s*DESCRIPTION:[ \t]*(.+)$`)
)

// Parse extracts the three fields from a model answer. Each field is looked
// up independently: a missing line yields an empty value, an unrecognized
// TYPE yields OTHER.
func Parse(text string) domain.Classification {
	return domain.Classification{
		Title:       firstMatch(titleLine, text),
		Category:    domain.CoerceCategory(firstMatch(typeLine, text)),
		Description: firstMatch(descriptionLine, text),
	}
}

func firstMatch(re *regexp.Regexp, text string) string {
	m := re.FindStringSubmatch(text)
	if len(m) < 2 {
		return ""
	}
	return strings.TrimSpace(m[1])
}
