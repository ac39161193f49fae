package model

// Guidance is the composed output of the recovery advisor.
type Guidance struct {
	Status         RiskLevel `json:"status"`
	PrimaryMessage string    `json:"primaryMessage"`
	Suggestions    []string  `json:"suggestions"`
	Encouragement  string    `json:"encouragement"`
	WarningMessage string    `json:"warningMessage"`
}

// TestAnalysis is the short-horizon trend computed from the two most
// recent daily tests.
type TestAnalysis struct {
	Trend   string `json:"trend"`
	Message string `json:"message"`
}

// RecoveryProgress is the longer-horizon recovery signal computed from the
// last five daily tests.
type RecoveryProgress struct {
	InRecovery bool   `json:"inRecovery"`
	Message    string `json:"message"`
}
