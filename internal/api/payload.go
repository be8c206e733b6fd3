package api

type captureRequest struct {
	Output    string `json:"output"`
	Screen    int    `json:"screen"`
	Overwrite *bool  `json:"overwrite"`
}

type captureFailure struct {
	Path  string `json:"path,omitempty"`
	Error string `json:"error"`
}

type captureResponse struct {
	RunID  string           `json:"run_id"`
	Files  []string         `json:"files"`
	Errors []captureFailure `json:"errors,omitempty"`
}

type screenPayload struct {
	Index  int `json:"index"`
	Left   int `json:"left"`
	Top    int `json:"top"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

type screensResponse struct {
	Screens []screenPayload `json:"screens"`
}
