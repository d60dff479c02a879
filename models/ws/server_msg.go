package wsmodels

type EventCode string

const (
	EventApplicantSubmitted EventCode = "applicant_submitted"
	EventDocumentSubmitted  EventCode = "document_submitted"
)

// ServerMessage is pushed to connected admin panel sessions. ToUserID empty
// means broadcast to every session.
type ServerMessage struct {
	ToUserID    string    `json:"-"`
	Time        string    `json:"time"`
	Code        EventCode `json:"code"`
	ApplicantID string    `json:"applicant_id,omitempty"`
	Msg         string    `json:"msg"`
}
