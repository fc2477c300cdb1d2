package evaluator

// word lists behind the heuristic scorers. Counts against each list are
// capped before weighting, so no single lexicon can dominate a score.

var emotionalWords = wordSet("amazing", "excited", "thrilled", "incredible", "wonderful",
	"important", "crucial", "essential", "valuable", "beneficial")

var engagementVerbs = wordSet("learn", "discover", "explore", "achieve", "transform",
	"improve", "enhance", "develop", "create", "build")

var personalPronouns = wordSet("i", "you", "we", "us")

var formalWords = wordSet("utilize", "implement", "facilitate", "optimize", "leverage",
	"strategize", "methodology", "paradigm", "synergy", "initiative")

var casualWords = wordSet("hey", "guys", "awesome", "cool", "stuff", "thing",
	"kinda", "sorta", "gonna", "wanna")

var benefitIndicators = wordSet("benefit", "advantage", "value", "improve", "enhance",
	"increase", "reduce", "save", "optimize", "streamline")

var problemIndicators = wordSet("challenge", "problem", "issue", "pain", "difficulty",
	"struggle", "obstacle", "barrier", "hurdle")

var uniqueIndicators = wordSet("unique", "exclusive", "only", "first", "innovative",
	"revolutionary", "groundbreaking", "cutting-edge")

var ctaVerbs = wordSet("join", "register", "sign", "download", "subscribe",
	"learn", "discover", "explore", "start", "try")

var urgencyIndicators = wordSet("now", "today", "limited", "exclusive", "special",
	"offer", "deadline", "time", "chance", "opportunity")

var descriptiveAdjectives = wordSet("clear", "vibrant", "detailed", "sharp", "colorful",
	"striking", "captivating", "engaging", "dynamic", "vivid")

var spatialIndicators = wordSet("above", "below", "left", "right", "center",
	"foreground", "background", "top", "bottom", "middle")

var visualVerbs = wordSet("show", "display", "depict", "illustrate", "present",
	"highlight", "feature", "demonstrate", "reveal", "portray")

var mediaReferences = wordSet("image", "photo", "picture", "video", "graphic",
	"infographic", "visual", "illustration", "diagram", "chart")

var expertTerms = wordSet("research", "study", "analysis", "findings", "data",
	"statistics", "trend", "pattern", "correlation", "impact")

var analysisIndicators = wordSet("because", "therefore", "thus", "consequently",
	"however", "although", "while", "whereas", "despite")

var transitionWords = wordSet("first", "second", "finally", "moreover", "furthermore",
	"additionally", "however", "nevertheless", "consequently",
	"therefore", "thus", "hence", "accordingly")

func wordSet(words ...string) map[string]struct{} {
	s := make(map[string]struct{}, len(words))
	for _, w := range words {
		s[w] = struct{}{}
	}
	return s
}
