package entities

// ChallengeRequest carries the arguments of show3ds.
type ChallengeRequest struct {
	AcsURL        string `json:"acsUrl"`
	TransactionID string `json:"transactionId"`
	PaReq         string `json:"paReq"`
}
