package messages

// Analysis tasks dispatched by the request handler.
const (
	TaskFullPipeline   = "full_pipeline"
	TaskTranslate      = "translate"
	TaskAnswerQuestion = "answer_question"
)

// Sentiment labels the classifier is instructed to choose from. The raw
// completion text is stored verbatim rather than membership-checked, so
// any model drift away from these labels stays visible in the data.
const (
	SentimentPositive = "positive"
	SentimentNegative = "negative"
	SentimentNeutral  = "neutral"
)

// Urgency labels the classifier is instructed to choose from.
const (
	UrgencyUrgent = "URGENT"
	UrgencyHigh   = "HIGH"
	UrgencyMedium = "MEDIUM"
	UrgencyLow    = "LOW"
)

// AnalysisRequest is the immutable per-invocation input.
type AnalysisRequest struct {
	Task             string `json:"task"`
	Text             string `json:"text"`
	TargetLanguage   string `json:"targetLanguage,omitempty"`
	OriginalLanguage string `json:"originalLanguage,omitempty"`
	MessageID        string `json:"messageId,omitempty"`
	Context          string `json:"context,omitempty"`
	PropertyID       string `json:"propertyId,omitempty"`
}

// AnalysisResult is the flat record assembled by the full pipeline.
type AnalysisResult struct {
	Sentiment      string  `json:"sentiment"`
	Urgency        string  `json:"urgency"`
	Department     string  `json:"department"`
	Subcategory    *string `json:"subcategory,omitempty"`
	TranslatedText *string `json:"translatedText,omitempty"`
	IsTranslated   bool    `json:"isTranslated"`
	TargetLanguage *string `json:"targetLanguage,omitempty"`
	Analyzed       bool    `json:"analyzed"`
}

// TranslationResult is the translate-only task output.
type TranslationResult struct {
	TranslatedText *string `json:"translatedText,omitempty"`
	IsTranslated   bool    `json:"isTranslated"`
	TargetLanguage *string `json:"targetLanguage,omitempty"`
}

// AnswerResult is the answer_question task output.
type AnswerResult struct {
	Answer string `json:"answer"`
}

// PersistenceOutcome reports what happened to the dependent persistence
// step. It never influences the HTTP status of the analysis itself.
type PersistenceOutcome struct {
	Attempted bool   `json:"attempted"`
	OK        bool   `json:"ok"`
	Detail    string `json:"detail"`
}

// Response is the envelope returned for every task execution.
type Response struct {
	Task     string             `json:"task"`
	Result   *string            `json:"result"`
	Results  any                `json:"results"`
	DBUpdate PersistenceOutcome `json:"dbUpdate"`
}

// AnalysisPatch carries the fields to merge into a persisted message. Nil
// fields leave the stored column untouched.
type AnalysisPatch struct {
	Sentiment      *string
	Urgency        *string
	Department     *string
	Subcategory    *string
	TranslatedText *string
	IsTranslated   *bool
}

func (r AnalysisResult) patch() AnalysisPatch {
	sentiment, urgency, department := r.Sentiment, r.Urgency, r.Department
	p := AnalysisPatch{
		Sentiment:   &sentiment,
		Urgency:     &urgency,
		Department:  &department,
		Subcategory: r.Subcategory,
	}
	if r.IsTranslated {
		isTranslated := true
		p.TranslatedText = r.TranslatedText
		p.IsTranslated = &isTranslated
	}
	return p
}

func (r TranslationResult) patch() AnalysisPatch {
	if !r.IsTranslated {
		return AnalysisPatch{}
	}
	isTranslated := true
	return AnalysisPatch{
		TranslatedText: r.TranslatedText,
		IsTranslated:   &isTranslated,
	}
}
