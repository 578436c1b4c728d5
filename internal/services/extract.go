package services

import (
	"regexp"
	"strings"
	"unicode"
)

// ExtractedDetails holds best-effort display labels recovered from a
// free-text payment description. A field the text does not mention stays nil.
type ExtractedDetails struct {
	ModalityName *string
	CategoryName *string
	GenderName   *string
}

// extractRule is one (pattern, assign) pair. Rules run in declaration order
// over the lowercased description and only fill fields that are still empty,
// so the precedence between competing patterns stays auditable.
type extractRule struct {
	re     *regexp.Regexp
	assign func(d *ExtractedDetails, groups []string)
}

var extractRules = []extractRule{
	// Richest form first: "inscrição em <modality> - <category>", written by
	// the newer checkout. Yields two fields in one match.
	{
		re: regexp.MustCompile(`inscri[çc][ãa]o em\s+([^,\-]+?)\s*-\s*([^,.]+)`),
		assign: func(d *ExtractedDetails, g []string) {
			setIfEmpty(&d.ModalityName, g[1])
			setIfEmpty(&d.CategoryName, g[2])
		},
	},
	{
		re: regexp.MustCompile(`modalidade\s*:?\s*(.+?)(?:\s{2,}|,|\.|categoria|$)`),
		assign: func(d *ExtractedDetails, g []string) {
			setIfEmpty(&d.ModalityName, g[1])
		},
	},
	{
		re: regexp.MustCompile(`categoria\s*:?\s*(.+?)(?:\s{2,}|,|\.|g[êe]nero|$)`),
		assign: func(d *ExtractedDetails, g []string) {
			setIfEmpty(&d.CategoryName, g[1])
		},
	},
	// Older descriptions wrote "categoria" with arbitrary separators and a
	// single-token value.
	{
		re: regexp.MustCompile(`categoria\s*[:\-]?\s*(\S+)`),
		assign: func(d *ExtractedDetails, g []string) {
			setIfEmpty(&d.CategoryName, g[1])
		},
	},
	{
		re: regexp.MustCompile(`g[êe]nero\s*:?\s*(.+?)(?:\s{2,}|,|\.|lote|$)`),
		assign: func(d *ExtractedDetails, g []string) {
			setIfEmpty(&d.GenderName, g[1])
		},
	},
	{
		re: regexp.MustCompile(`masculino|feminino`),
		assign: func(d *ExtractedDetails, g []string) {
			setIfEmpty(&d.GenderName, g[0])
		},
	},
	// Last resort for modality: the leading text up to the first comma or
	// colon.
	{
		re: regexp.MustCompile(`^([^,:]+)`),
		assign: func(d *ExtractedDetails, g []string) {
			setIfEmpty(&d.ModalityName, g[1])
		},
	},
}

// ExtractDetails recovers modality/category/gender labels from a free-text
// payment description. Matching is case-insensitive (the text is lowercased
// once), the first successful pattern per field wins, and a field without a
// match stays nil. It never fails.
func ExtractDetails(description string) ExtractedDetails {
	var d ExtractedDetails
	text := strings.ToLower(strings.TrimSpace(description))
	if text == "" {
		return d
	}
	for _, rule := range extractRules {
		if d.ModalityName != nil && d.CategoryName != nil && d.GenderName != nil {
			break
		}
		if g := rule.re.FindStringSubmatch(text); g != nil {
			rule.assign(&d, g)
		}
	}
	return d
}

func setIfEmpty(field **string, value string) {
	if *field != nil {
		return
	}
	v := capitalize(strings.TrimSpace(value))
	if v == "" {
		return
	}
	*field = &v
}

// capitalize upper-cases the first letter and leaves the rest untouched.
func capitalize(s string) string {
	r := []rune(s)
	if len(r) == 0 {
		return s
	}
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}
