package similarity

const (
	// winkler prefix boost only applies above this jaro score
	winklerBoostThreshold = 0.7
	winklerPrefixScale    = 0.1
	winklerMaxPrefix      = 4
)

type jaroWinklerScorer struct {
	corpus []string
}

// NewJaroWinkler returns a Scorer based on jaro-winkler similarity over
// runes, so multibyte scripts are compared by character not by byte.
func NewJaroWinkler(corpus []string) Scorer {
	return &jaroWinklerScorer{corpus: corpus}
}

func (s *jaroWinklerScorer) Name() string {
	return "jaro_winkler"
}

func (s *jaroWinklerScorer) Score(i, j int) float64 {
	return JaroWinkler(s.corpus[i], s.corpus[j])
}

// Jaro returns the jaro similarity of two strings computed over runes.
// Matches are searched within a window of max(len)/2 - 1 positions and
// half transpositions are counted among matched characters.
func Jaro(a, b string) float64 {
	ra, rb := []rune(a), []rune(b)
	la, lb := len(ra), len(rb)
	if la == 0 && lb == 0 {
		return 1
	}
	if la == 0 || lb == 0 {
		return 0
	}
	window := la
	if lb > window {
		window = lb
	}
	window = window/2 - 1
	if window < 0 {
		window = 0
	}
	matchedA := make([]bool, la)
	matchedB := make([]bool, lb)
	matches := 0
	for i := 0; i < la; i++ {
		lo := i - window
		if lo < 0 {
			lo = 0
		}
		hi := i + window
		if hi > lb-1 {
			hi = lb - 1
		}
		for k := lo; k <= hi; k++ {
			if matchedB[k] || ra[i] != rb[k] {
				continue
			}
			matchedA[i] = true
			matchedB[k] = true
			matches++
			break
		}
	}
	if matches == 0 {
		return 0
	}
	halfTranspositions := 0
	k := 0
	for i := 0; i < la; i++ {
		if !matchedA[i] {
			continue
		}
		for !matchedB[k] {
			k++
		}
		if ra[i] != rb[k] {
			halfTranspositions++
		}
		k++
	}
	m := float64(matches)
	t := float64(halfTranspositions / 2)
	return (m/float64(la) + m/float64(lb) + (m-t)/m) / 3
}

// JaroWinkler boosts the jaro similarity by the length of the shared
// prefix (capped at 4 runes) when the base score is above 0.7.
func JaroWinkler(a, b string) float64 {
	score := Jaro(a, b)
	if score <= winklerBoostThreshold {
		return score
	}
	ra, rb := []rune(a), []rune(b)
	prefix := 0
	for prefix < len(ra) && prefix < len(rb) && prefix < winklerMaxPrefix && ra[prefix] == rb[prefix] {
		prefix++
	}
	return score + float64(prefix)*winklerPrefixScale*(1-score)
}
