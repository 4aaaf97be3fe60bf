package model

import "time"

// RequestStatus is the lifecycle state of a withdrawal request.
type RequestStatus string

const (
	StatusPending  RequestStatus = "pending"
	StatusApproved RequestStatus = "approved"
	StatusRejected RequestStatus = "rejected"
	StatusExpired  RequestStatus = "expired"
)

// WithdrawalWindow is how long a request stays open for votes.
const WithdrawalWindow = 24 * time.Hour

// WithdrawalRequest asks the vault members to release Amount to the requester.
type WithdrawalRequest struct {
	ID          string
	VaultID     string
	RequesterID Address
	Amount      Amount
	Purpose     string
	Approvals   []Address
	Rejections  []Address
	Status      RequestStatus
	CreatedAt   time.Time
	ExpiresAt   time.Time
}

// IsPending reports whether the request still accepts votes.
func (r WithdrawalRequest) IsPending() bool {
	return r.Status == StatusPending
}

// HasStance reports whether a already approved or rejected the request.
func (r WithdrawalRequest) HasStance(a Address) bool {
	return containsAddress(r.Approvals, a) || containsAddress(r.Rejections, a)
}

// ExpiredAt reports whether a pending request is past its window at now.
func (r WithdrawalRequest) ExpiredAt(now time.Time) bool {
	return r.IsPending() && now.After(r.ExpiresAt)
}

// Clone returns a deep copy.
func (r WithdrawalRequest) Clone() WithdrawalRequest {
	r.Approvals = cloneAddresses(r.Approvals)
	r.Rejections = cloneAddresses(r.Rejections)
	return r
}
