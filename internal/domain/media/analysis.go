package media

// Analysis is the fixed placeholder payload returned with media detail. No
// real analysis runs; the shape is kept stable for API compatibility.
type Analysis struct {
	Rekognition RekognitionResult `json:"rekognition"`
	Transcribe  string            `json:"transcribe"`
	Comprehend  ComprehendResult  `json:"comprehend"`
}

type RekognitionResult struct {
	Labels []RekognitionLabel `json:"labels"`
}

type RekognitionLabel struct {
	Name       string `json:"Name"`
	Confidence int    `json:"Confidence"`
}

type ComprehendResult struct {
	Sentiment string `json:"sentiment"`
}

func placeholderAnalysis() Analysis {
	return Analysis{
		Rekognition: RekognitionResult{
			Labels: []RekognitionLabel{{Name: "Person", Confidence: 95}},
		},
		Transcribe: "Sample transcript will appear here (demo).",
		Comprehend: ComprehendResult{Sentiment: "POSITIVE"},
	}
}
