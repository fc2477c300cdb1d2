package evaluator

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/go-pkgz/lgr"

	"github.com/umputun/postscope/pkg/domain"
	"github.com/umputun/postscope/pkg/nlp"
)

// tunable scoring caps, kept compatible with the historical heuristics
const (
	questionCap   = 2.0
	emotionalCap  = 5.0
	pronounCap    = 3.0
	actionVerbCap = 3.0
	formalCap     = 5.0
	casualCap     = 3.0
	sentLenCap    = 20.0
)

// Extractor turns raw text into a feature document
type Extractor interface {
	Extract(text string) (*nlp.Doc, error)
}

// MetricsRecorder appends an evaluation result to the metrics history
type MetricsRecorder interface {
	AddMetrics(ctx context.Context, contentType domain.ContentType, metrics domain.MetricSet) error
}

// Evaluator converts content into normalized [0,1] quality scores using
// rule-based linguistic heuristics. Every evaluation is recorded into the
// metrics history as a best-effort side effect.
type Evaluator struct {
	extractor Extractor
	recorder  MetricsRecorder
}

// New creates an evaluator with the given feature extractor and recorder.
// The recorder may be nil when metric history is not needed.
func New(extractor Extractor, recorder MetricsRecorder) *Evaluator {
	return &Evaluator{extractor: extractor, recorder: recorder}
}

// typeScorers dispatches content-type-specific sub-scores by tag
var typeScorers = map[domain.ContentType]func(d *nlp.Doc) map[string]float64{
	domain.ContentMedia: func(d *nlp.Doc) map[string]float64 {
		return map[string]float64{
			"visual_description_quality": scoreVisualDescription(d),
			"media_relevance":            scoreMediaRelevance(d),
		}
	},
	domain.ContentArticle: func(d *nlp.Doc) map[string]float64 {
		return map[string]float64{
			"depth_of_insight":  scoreDepthOfInsight(d),
			"structure_quality": scoreStructureQuality(d),
		}
	},
}

// Evaluate scores content on the five core dimensions plus content-type
// specific sub-scores. Optional engagement data adds an engagement_accuracy
// score comparing the prediction against observed engagement.
func (e *Evaluator) Evaluate(ctx context.Context, content string, contentType domain.ContentType, engagement map[string]float64) (domain.MetricSet, error) {
	if !contentType.Valid() {
		return domain.MetricSet{}, fmt.Errorf("unknown content type %q", contentType)
	}

	doc, err := e.extractor.Extract(content)
	if err != nil {
		return domain.MetricSet{}, fmt.Errorf("extract features: %w", err)
	}

	metrics := domain.MetricSet{
		Clarity:             scoreClarity(doc),
		EngagementPotential: scoreEngagementPotential(doc),
		ProfessionalTone:    scoreProfessionalTone(doc),
		ValueProposition:    scoreValueProposition(doc),
		CallToAction:        scoreCallToAction(doc),
	}
	if scorer, ok := typeScorers[contentType]; ok {
		metrics.ContentTypeSpecific = scorer(doc)
	}

	if len(engagement) > 0 {
		acc := engagementAccuracy(metrics.EngagementPotential, engagement)
		metrics.EngagementAccuracy = &acc
	}

	if e.recorder != nil {
		if err := e.recorder.AddMetrics(ctx, contentType, metrics); err != nil {
			lgr.Printf("[WARN] failed to record metrics history: %v", err)
		}
	}

	return metrics, nil
}

// scoreClarity combines readability indices with sentence length uniformity
func scoreClarity(d *nlp.Doc) float64 {
	if d.Empty() {
		return 0
	}

	ease := clamp01((d.ReadingEase() - 30) / 70)
	fog := clamp01(1 - d.FogIndex()/20)
	smog := clamp01(1 - d.SMOGIndex()/15)

	uniformity := 0.5 // neutral for single-sentence content
	if len(d.Sentences) > 1 {
		lengths := make([]float64, len(d.Sentences))
		for i, s := range d.Sentences {
			lengths[i] = float64(s.WordCount())
		}
		if m := mean(lengths); m > 0 {
			uniformity = clamp01(1 - stddev(lengths)/m)
		}
	}

	return round2(0.4*ease + 0.3*fog + 0.2*smog + 0.1*uniformity)
}

// scoreEngagementPotential counts questions, emotional words, personal
// pronouns and action verbs, each capped before weighting
func scoreEngagementPotential(d *nlp.Doc) float64 {
	if d.Empty() {
		return 0
	}

	var questions, emotional, pronouns, verbs float64
	for _, t := range d.Tokens {
		low := strings.ToLower(t.Text)
		if strings.HasSuffix(t.Text, "?") {
			questions++
		}
		if _, ok := emotionalWords[low]; ok {
			emotional++
		}
		if strings.HasPrefix(t.Tag, "PRP") {
			if _, ok := personalPronouns[low]; ok {
				pronouns++
			}
		}
		if strings.HasPrefix(t.Tag, "VB") {
			if _, ok := engagementVerbs[low]; ok {
				verbs++
			}
		}
	}

	score := 0.3*math.Min(questions/questionCap, 1) +
		0.2*math.Min(emotional/emotionalCap, 1) +
		0.2*math.Min(pronouns/pronounCap, 1) +
		0.3*math.Min(verbs/actionVerbCap, 1)
	return round2(clamp01(score))
}

// scoreProfessionalTone weighs formal vocabulary against casual vocabulary
// and rewards longer sentence structure
func scoreProfessionalTone(d *nlp.Doc) float64 {
	if d.Empty() {
		return 0
	}

	var formal, casual float64
	for _, t := range d.Tokens {
		low := strings.ToLower(t.Text)
		if _, ok := formalWords[low]; ok {
			formal++
		}
		if _, ok := casualWords[low]; ok {
			casual++
		}
	}

	structure := 0.0
	if len(d.Sentences) > 0 {
		total := 0
		for _, s := range d.Sentences {
			total += len(s.Tokens)
		}
		avg := float64(total) / float64(len(d.Sentences))
		structure = math.Min(avg/sentLenCap, 1)
	}

	score := 0.4*math.Min(formal/formalCap, 1) +
		0.3*(1-math.Min(casual/casualCap, 1)) +
		0.3*structure
	return round2(clamp01(score))
}

// scoreValueProposition looks for benefit statements, problem-solution
// structure and uniqueness claims at the sentence level
func scoreValueProposition(d *nlp.Doc) float64 {
	if len(d.Sentences) == 0 {
		return 0
	}

	var benefits, problemSolution, unique float64
	for _, s := range d.Sentences {
		low := strings.ToLower(s.Text)
		hasBenefit := containsAny(low, benefitIndicators)
		if hasBenefit {
			benefits++
		}
		if hasBenefit && containsAny(low, problemIndicators) {
			problemSolution++
		}
		if containsAny(low, uniqueIndicators) {
			unique++
		}
	}

	score := 0.4*math.Min(benefits/2, 1) +
		0.4*math.Min(problemSolution/1, 1) +
		0.2*math.Min(unique/2, 1)
	return round2(clamp01(score))
}

// scoreCallToAction detects action verbs, urgency markers and imperative
// sentence openings
func scoreCallToAction(d *nlp.Doc) float64 {
	if len(d.Sentences) == 0 {
		return 0
	}

	var actions, urgency, imperatives float64
	for _, s := range d.Sentences {
		low := strings.ToLower(s.Text)
		if containsAny(low, ctaVerbs) {
			actions++
		}
		if containsAny(low, urgencyIndicators) {
			urgency++
		}
		if len(s.Tokens) > 0 && s.Tokens[0].Tag == "VB" {
			imperatives++
		}
	}

	score := 0.4*math.Min(actions/2, 1) +
		0.3*math.Min(urgency/2, 1) +
		0.3*math.Min(imperatives/1, 1)
	return round2(clamp01(score))
}

// scoreVisualDescription measures descriptive adjective, spatial and visual
// verb vocabulary for media posts
func scoreVisualDescription(d *nlp.Doc) float64 {
	if d.Empty() {
		return 0
	}

	var adjectives, spatial, verbs float64
	for _, t := range d.Tokens {
		low := strings.ToLower(t.Text)
		if _, ok := descriptiveAdjectives[low]; ok {
			adjectives++
		} else if _, ok := spatialIndicators[low]; ok {
			spatial++
		} else if _, ok := visualVerbs[low]; ok {
			verbs++
		}
	}

	score := 0.4*math.Min(adjectives/3, 1) +
		0.3*math.Min(spatial/2, 1) +
		0.3*math.Min(verbs/2, 1)
	return round2(clamp01(score))
}

// scoreMediaRelevance measures media vocabulary plus a sentence-count proxy
// for contextual linking between text and media
func scoreMediaRelevance(d *nlp.Doc) float64 {
	var refs float64
	for _, t := range d.Tokens {
		if _, ok := mediaReferences[strings.ToLower(t.Text)]; ok {
			refs++
		}
	}

	contextual := 0.0
	if len(d.Sentences) > 1 {
		contextual = math.Min(float64(len(d.Sentences))/5, 1)
	}

	score := 0.6*math.Min(refs/2, 1) + 0.4*contextual
	return round2(clamp01(score))
}

// scoreDepthOfInsight measures expert vocabulary, numeric claims and
// analytical connectives for articles
func scoreDepthOfInsight(d *nlp.Doc) float64 {
	if d.Empty() {
		return 0
	}

	var expert, connectives float64
	for _, t := range d.Tokens {
		low := strings.ToLower(t.Text)
		if _, ok := expertTerms[low]; ok {
			expert++
		} else if _, ok := analysisIndicators[low]; ok {
			connectives++
		}
	}

	var dataRefs float64
	for _, ent := range d.Entities {
		switch ent.Label {
		case nlp.LabelCardinal, nlp.LabelPercent, nlp.LabelQuantity:
			dataRefs++
		}
	}

	score := 0.4*math.Min(expert/5, 1) +
		0.3*math.Min(dataRefs/3, 1) +
		0.3*math.Min(connectives/3, 1)
	return round2(clamp01(score))
}

// scoreStructureQuality measures paragraph length uniformity, transition
// vocabulary and paragraph count for articles
func scoreStructureQuality(d *nlp.Doc) float64 {
	if d.Empty() {
		return 0
	}

	paragraphs := strings.Split(d.Text(), "\n\n")

	uniformity := 0.0
	if len(paragraphs) > 1 {
		lengths := make([]float64, len(paragraphs))
		for i, p := range paragraphs {
			lengths[i] = float64(len(strings.Fields(p)))
		}
		if m := mean(lengths); m > 0 {
			uniformity = clamp01(1 - stddev(lengths)/m)
		}
	}

	var transitions float64
	for _, t := range d.Tokens {
		if _, ok := transitionWords[strings.ToLower(t.Text)]; ok {
			transitions++
		}
	}

	score := 0.4*uniformity +
		0.3*math.Min(transitions/5, 1) +
		0.3*math.Min(float64(len(paragraphs))/5, 1)
	return round2(clamp01(score))
}

// engagementAccuracy compares predicted engagement against the mean of
// max-normalized observed engagement values
func engagementAccuracy(predicted float64, actual map[string]float64) float64 {
	maxVal := 0.0
	for _, v := range actual {
		if v > maxVal {
			maxVal = v
		}
	}
	if maxVal == 0 {
		return 0
	}

	sum := 0.0
	for _, v := range actual {
		sum += v / maxVal
	}
	avg := sum / float64(len(actual))

	return round2(clamp01(1 - math.Abs(predicted-avg)))
}

// containsAny reports if the sentence contains any word from the set as a
// substring, matching the historical scoring behavior
func containsAny(sentence string, set map[string]struct{}) bool {
	for w := range set {
		if strings.Contains(sentence, w) {
			return true
		}
	}
	return false
}

func mean(vals []float64) float64 {
	if len(vals) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range vals {
		sum += v
	}
	return sum / float64(len(vals))
}

func stddev(vals []float64) float64 {
	if len(vals) == 0 {
		return 0
	}
	m := mean(vals)
	sum := 0.0
	for _, v := range vals {
		sum += (v - m) * (v - m)
	}
	return math.Sqrt(sum / float64(len(vals)))
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(v, 1))
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
