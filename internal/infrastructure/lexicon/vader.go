package lexicon

import (
	"regexp"
	"strings"

	"github.com/jonreiter/govader"
	"github.com/russross/blackfriday/v2"

	"github.com/jhoicas/review-insights-api/internal/application/ports"
)

var _ ports.SentimentLexicon = (*VaderLexicon)(nil)

// Umbral del puntaje compuesto de VADER; entre ambos extremos la reseña es "neutral".
const polarityThreshold = 0.20

var (
	linkPattern = regexp.MustCompile(`\[(.*?)\]\((https?:\/\/[^\s\)]+)\)`)
	urlPattern  = regexp.MustCompile(`https?://\S+|www\.\S+`)
	tagPattern  = regexp.MustCompile(`<[^>]*>`)
)

// VaderLexicon analizador léxico local. No sustituye al LLM: solo sirve para
// registrar discrepancias con la clasificación devuelta por el modelo.
type VaderLexicon struct {
	analyzer *govader.SentimentIntensityAnalyzer
}

// NewVaderLexicon carga el léxico embebido de govader (una sola vez al arrancar).
func NewVaderLexicon() *VaderLexicon {
	return &VaderLexicon{analyzer: govader.NewSentimentIntensityAnalyzer()}
}

// Polarity devuelve el puntaje compuesto y su etiqueta: positive, negative o neutral.
func (v *VaderLexicon) Polarity(text string) (float64, string) {
	score := v.analyzer.PolarityScores(PlainText(text)).Compound

	switch {
	case score >= polarityThreshold:
		return score, "positive"
	case score <= -polarityThreshold:
		return score, "negative"
	default:
		return score, "neutral"
	}
}

// PlainText convierte una reseña con markdown a texto plano sin enlaces.
func PlainText(input string) string {
	input = linkPattern.ReplaceAllString(input, "$1")

	html := blackfriday.Run([]byte(input), blackfriday.WithNoExtensions())
	text := tagPattern.ReplaceAllString(string(html), " ")
	text = urlPattern.ReplaceAllString(text, "")

	return strings.Join(strings.Fields(text), " ")
}
