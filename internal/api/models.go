package api

// QueryRequest is the body of POST /api/query.
type QueryRequest struct {
	Question string `json:"question" description:"natural-language question"`
}

// QueryResponse carries the answer for one question.
type QueryResponse struct {
	Answer   string `json:"answer"`
	Matched  bool   `json:"matched"`
	Score    int    `json:"score"`
	Segments []int  `json:"segments,omitempty"`
	Fallback bool   `json:"fallback,omitempty"`
}

// DocumentRequest is the body of POST /api/document. URL takes precedence over Text.
type DocumentRequest struct {
	Text string `json:"text,omitempty"`
	URL  string `json:"url,omitempty"`
}

type DocumentResponse struct {
	Segments     int      `json:"segments"`
	Segmentation string   `json:"segmentation"`
	Chars        int      `json:"chars"`
	Keywords     []string `json:"keywords,omitempty"`
}

type HealthResponse struct {
	Status   string `json:"status"`
	Loaded   bool   `json:"loaded"`
	Segments int    `json:"segments"`
	Loads    uint64 `json:"loads"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
