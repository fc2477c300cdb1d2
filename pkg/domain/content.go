package domain

// ContentType is a closed set of content kinds the evaluator understands
type ContentType string

// supported content types
const (
	ContentText    ContentType = "text"
	ContentMedia   ContentType = "media"
	ContentArticle ContentType = "article"
)

// Valid reports if the content type is one of the supported kinds
func (c ContentType) Valid() bool {
	switch c {
	case ContentText, ContentMedia, ContentArticle:
		return true
	}
	return false
}

// MetricSet holds the scored quality dimensions of one piece of content.
// Every scalar is in [0,1] by construction.
type MetricSet struct {
	Clarity             float64            `json:"clarity"`
	EngagementPotential float64            `json:"engagement_potential"`
	ProfessionalTone    float64            `json:"professional_tone"`
	ValueProposition    float64            `json:"value_proposition"`
	CallToAction        float64            `json:"call_to_action"`
	ContentTypeSpecific map[string]float64 `json:"content_type_specific,omitempty"`
	EngagementAccuracy  *float64           `json:"engagement_accuracy,omitempty"`
}

// Scores returns the flattened metric name to value mapping, including
// content-type-specific sub-scores and engagement accuracy when present
func (m *MetricSet) Scores() map[string]float64 {
	res := map[string]float64{
		"clarity":              m.Clarity,
		"engagement_potential": m.EngagementPotential,
		"professional_tone":    m.ProfessionalTone,
		"value_proposition":    m.ValueProposition,
		"call_to_action":       m.CallToAction,
	}
	for k, v := range m.ContentTypeSpecific {
		res[k] = v
	}
	if m.EngagementAccuracy != nil {
		res["engagement_accuracy"] = *m.EngagementAccuracy
	}
	return res
}
