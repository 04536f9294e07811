package http

import (
	"net/http"

	"github.com/lavizaismail/hostelhub/internal/usecase/billing"
	"github.com/lavizaismail/hostelhub/internal/usecase/receipt"

	"github.com/labstack/echo/v4"
)

type PaymentHandler struct {
	uc       *billing.Usecase
	receipts *receipt.Usecase
}

func NewPaymentHandler(uc *billing.Usecase, rc *receipt.Usecase) *PaymentHandler {
	return &PaymentHandler{uc: uc, receipts: rc}
}

// submitEvidenceReq checks shape only; required-field enforcement lives in
// the workflow so the response can list every missing field at once.
type submitEvidenceReq struct {
	StudentID     uint   `json:"student_id"     validate:"required"`
	TransactionID string `json:"transaction_id" validate:"max=100"`
	PayerName     string `json:"payer_name"     validate:"max=100"`
	BankName      string `json:"bank_name"      validate:"max=100"`
	PaidDate      string `json:"paid_date"      validate:"omitempty,datetime=2006-01-02"`
	PaidTime      string `json:"paid_time"      validate:"omitempty,hhmm"`
	Method        string `json:"method"         validate:"max=50"`
}

func (h *PaymentHandler) SubmitEvidence(c echo.Context) error {
	paymentID, ok := parseUintParam(c, "payment_id")
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid payment_id path param"})
	}
	var req submitEvidenceReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}

	dto, err := h.uc.SubmitEvidence(c.Request().Context(), billing.EvidenceInput{
		StudentID:     req.StudentID,
		PaymentID:     paymentID,
		TransactionID: req.TransactionID,
		PayerName:     req.PayerName,
		BankName:      req.BankName,
		PaidDate:      req.PaidDate,
		PaidTime:      req.PaidTime,
		Method:        req.Method,
	})
	if err != nil {
		return writeFault(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *PaymentHandler) Verify(c echo.Context) error {
	paymentID, ok := parseUintParam(c, "payment_id")
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid payment_id path param"})
	}
	accountant, ok := actorID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing or invalid X-Actor-Id"})
	}

	result, err := h.uc.Verify(c.Request().Context(), billing.VerifyInput{
		AccountantID: accountant,
		PaymentID:    paymentID,
	})
	if err != nil {
		return writeFault(c, err)
	}
	return c.JSON(http.StatusOK, result)
}

type rejectPaymentReq struct {
	Reason string `json:"reason" validate:"max=500"`
}

func (h *PaymentHandler) Reject(c echo.Context) error {
	paymentID, ok := parseUintParam(c, "payment_id")
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid payment_id path param"})
	}
	accountant, ok := actorID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing or invalid X-Actor-Id"})
	}
	var req rejectPaymentReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	dto, err := h.uc.Reject(c.Request().Context(), billing.RejectInput{
		AccountantID: accountant,
		PaymentID:    paymentID,
		Reason:       req.Reason,
	})
	if err != nil {
		return writeFault(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *PaymentHandler) Get(c echo.Context) error {
	paymentID, ok := parseUintParam(c, "payment_id")
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid payment_id path param"})
	}
	dto, err := h.uc.Get(c.Request().Context(), paymentID)
	if err != nil {
		return writeFault(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *PaymentHandler) Receipt(c echo.Context) error {
	paymentID, ok := parseUintParam(c, "payment_id")
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid payment_id path param"})
	}
	studentID, ok := parseUintParam(c, "student_id")
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid student_id path param"})
	}

	rcpt, err := h.receipts.Generate(c.Request().Context(), studentID, paymentID)
	if err != nil {
		return writeFault(c, err)
	}
	return c.JSON(http.StatusOK, rcpt)
}
