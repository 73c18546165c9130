package analysis

var emotionWeights = map[string]float64{
	"happy":    2,
	"excited":  2,
	"grateful": 2,
	"calm":     1,
	"sad":      -2,
	"angry":    -2,
	"anxious":  -1,
	"stressed": -1,
}

var (
	negativeEmotions = map[string]struct{}{"sad": {}, "anxious": {}, "stressed": {}, "angry": {}}
	positiveEmotions = map[string]struct{}{"happy": {}, "grateful": {}, "excited": {}, "calm": {}}
)

// ScoreEmotions averages the weight of each distinct label. Unknown labels
// weigh zero.
func ScoreEmotions(labels []string) float64 {
	labels = NormalizeEmotions(labels)
	if len(labels) == 0 {
		return 0
	}
	var total float64
	for _, label := range labels {
		total += emotionWeights[label]
	}
	return total / float64(len(labels))
}
