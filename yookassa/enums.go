package yookassa

import "github.com/brave-intl/yookassa-go/validators"

// PaymentStatus is the lifecycle state of a payment
type PaymentStatus string

const (
	// PaymentStatusPending payment created, waiting for the payer
	PaymentStatusPending PaymentStatus = "pending"
	// PaymentStatusWaitingForCapture funds are held, waiting for capture or cancel
	PaymentStatusWaitingForCapture PaymentStatus = "waiting_for_capture"
	// PaymentStatusSucceeded terminal, funds captured
	PaymentStatusSucceeded PaymentStatus = "succeeded"
	// PaymentStatusCanceled terminal, see cancellation details
	PaymentStatusCanceled PaymentStatus = "canceled"
)

var paymentStatuses = []string{
	string(PaymentStatusPending),
	string(PaymentStatusWaitingForCapture),
	string(PaymentStatusSucceeded),
	string(PaymentStatusCanceled),
}

// IsValid returns true if s is a member of PaymentStatus
func (s PaymentStatus) IsValid() bool {
	return validators.IsOneOf(string(s), paymentStatuses...)
}

func (s PaymentStatus) String() string {
	return string(s)
}

// ReceiptRegistration is the fiscal receipt registration state
type ReceiptRegistration string

const (
	ReceiptRegistrationPending   ReceiptRegistration = "pending"
	ReceiptRegistrationSucceeded ReceiptRegistration = "succeeded"
	ReceiptRegistrationCanceled  ReceiptRegistration = "canceled"
)

// IsValid returns true if r is a member of ReceiptRegistration
func (r ReceiptRegistration) IsValid() bool {
	return validators.IsOneOf(string(r),
		string(ReceiptRegistrationPending),
		string(ReceiptRegistrationSucceeded),
		string(ReceiptRegistrationCanceled),
	)
}

func (r ReceiptRegistration) String() string {
	return string(r)
}

// CancellationParty is who canceled a payment
type CancellationParty string

const (
	CancellationPartyMerchant       CancellationParty = "merchant"
	CancellationPartyYooMoney       CancellationParty = "yoo_money"
	CancellationPartyPaymentNetwork CancellationParty = "payment_network"
)

// IsValid returns true if p is a member of CancellationParty
func (p CancellationParty) IsValid() bool {
	return validators.IsOneOf(string(p),
		string(CancellationPartyMerchant),
		string(CancellationPartyYooMoney),
		string(CancellationPartyPaymentNetwork),
	)
}

func (p CancellationParty) String() string {
	return string(p)
}

// CancellationReason is why a payment was canceled
type CancellationReason string

const (
	CancellationReason3DSecureFailed             CancellationReason = "3d_secure_failed"
	CancellationReasonCallIssuer                 CancellationReason = "call_issuer"
	CancellationReasonCanceledByMerchant         CancellationReason = "canceled_by_merchant"
	CancellationReasonCardExpired                CancellationReason = "card_expired"
	CancellationReasonCountryForbidden           CancellationReason = "country_forbidden"
	CancellationReasonDealExpired                CancellationReason = "deal_expired"
	CancellationReasonExpiredOnCapture           CancellationReason = "expired_on_capture"
	CancellationReasonExpiredOnConfirmation      CancellationReason = "expired_on_confirmation"
	CancellationReasonFraudSuspected             CancellationReason = "fraud_suspected"
	CancellationReasonGeneralDecline             CancellationReason = "general_decline"
	CancellationReasonIdentificationRequired     CancellationReason = "identification_required"
	CancellationReasonInsufficientFunds          CancellationReason = "insufficient_funds"
	CancellationReasonInternalTimeout            CancellationReason = "internal_timeout"
	CancellationReasonInvalidCardNumber          CancellationReason = "invalid_card_number"
	CancellationReasonInvalidCSC                 CancellationReason = "invalid_csc"
	CancellationReasonIssuerUnavailable          CancellationReason = "issuer_unavailable"
	CancellationReasonPaymentMethodLimitExceeded CancellationReason = "payment_method_limit_exceeded"
	CancellationReasonPaymentMethodRestricted    CancellationReason = "payment_method_restricted"
	CancellationReasonPermissionRevoked          CancellationReason = "permission_revoked"
	CancellationReasonUnsupportedMobileOperator  CancellationReason = "unsupported_mobile_operator"
)

var cancellationReasons = []string{
	string(CancellationReason3DSecureFailed),
	string(CancellationReasonCallIssuer),
	string(CancellationReasonCanceledByMerchant),
	string(CancellationReasonCardExpired),
	string(CancellationReasonCountryForbidden),
	string(CancellationReasonDealExpired),
	string(CancellationReasonExpiredOnCapture),
	string(CancellationReasonExpiredOnConfirmation),
	string(CancellationReasonFraudSuspected),
	string(CancellationReasonGeneralDecline),
	string(CancellationReasonIdentificationRequired),
	string(CancellationReasonInsufficientFunds),
	string(CancellationReasonInternalTimeout),
	string(CancellationReasonInvalidCardNumber),
	string(CancellationReasonInvalidCSC),
	string(CancellationReasonIssuerUnavailable),
	string(CancellationReasonPaymentMethodLimitExceeded),
	string(CancellationReasonPaymentMethodRestricted),
	string(CancellationReasonPermissionRevoked),
	string(CancellationReasonUnsupportedMobileOperator),
}

// IsValid returns true if r is a member of CancellationReason
func (r CancellationReason) IsValid() bool {
	return validators.IsOneOf(string(r), cancellationReasons...)
}

func (r CancellationReason) String() string {
	return string(r)
}

// ConfirmationType is the scenario the payer follows to confirm a payment
type ConfirmationType string

const (
	ConfirmationTypeEmbedded          ConfirmationType = "embedded"
	ConfirmationTypeExternal          ConfirmationType = "external"
	ConfirmationTypeMobileApplication ConfirmationType = "mobile_application"
	ConfirmationTypeQR                ConfirmationType = "qr"
	ConfirmationTypeRedirect          ConfirmationType = "redirect"
)

// IsValid returns true if c is a member of ConfirmationType
func (c ConfirmationType) IsValid() bool {
	return validators.IsOneOf(string(c),
		string(ConfirmationTypeEmbedded),
		string(ConfirmationTypeExternal),
		string(ConfirmationTypeMobileApplication),
		string(ConfirmationTypeQR),
		string(ConfirmationTypeRedirect),
	)
}

func (c ConfirmationType) String() string {
	return string(c)
}
