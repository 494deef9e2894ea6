package request

import (
	"encoding/json"

	"cloudpayments_bridge/internal/domain/entities"
)

type AttachRequest struct {
	ActivityID string `json:"activityId" binding:"required"`
}

type ResultStatusRequest struct {
	StatusCode    int    `json:"statusCode"`
	StatusMessage string `json:"statusMessage"`
	Description   string `json:"description"`
}

type ActivityResultDataRequest struct {
	PaymentData json.RawMessage      `json:"paymentData"`
	Status      *ResultStatusRequest `json:"status"`
}

// ActivityResultRequest mirrors an OS activity result delivered by the host.
type ActivityResultRequest struct {
	RequestCode *int                       `json:"requestCode" binding:"required"`
	ResultCode  *int                       `json:"resultCode" binding:"required"`
	Data        *ActivityResultDataRequest `json:"data"`
}

func (r ActivityResultRequest) ToEntity() entities.ActivityResult {
	ar := entities.ActivityResult{RequestCode: *r.RequestCode, ResultCode: *r.ResultCode}
	if r.Data == nil {
		return ar
	}
	ar.Data = &entities.ActivityResultData{PaymentData: r.Data.PaymentData}
	if s := r.Data.Status; s != nil {
		ar.Data.Status = &entities.ResultStatus{
			Code:        s.StatusCode,
			Message:     s.StatusMessage,
			Description: s.Description,
		}
	}
	return ar
}

type ChallengeCompleteRequest struct {
	MD    string `json:"md" binding:"required"`
	PaRes string `json:"paRes" binding:"required"`
}

type ChallengeFailRequest struct {
	HTML *string `json:"html"`
}
