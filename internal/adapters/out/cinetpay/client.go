// Package cinetpay implements the payment gateway port against the
// CinetPay checkout API. All money moves through hosted checkout pages:
// the client opens a session, hands the payment URL back to the caller
// and later polls or receives a webhook for the verdict.
package cinetpay

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/Salamjean/kksExpress-backend/internal/core/ports"
	"github.com/Salamjean/kksExpress-backend/internal/pkg/errs"
)

const (
	defaultBaseURL = "https://api-checkout.cinetpay.com/v2"

	// checkoutCurrency is the only currency the platform bills in.
	checkoutCurrency = "XOF"

	// checkoutChannels lets the payer pick any mobile-money operator on
	// the hosted page instead of locking the session to one.
	checkoutChannels = "ALL"

	tokenCheckoutURL = "https://secure.cinetpay.com/?method=token&token="
)

// Config carries the merchant credentials and callback endpoints.
type Config struct {
	APIKey    string
	SiteID    string
	NotifyURL string
	ReturnURL string

	// BaseURL overrides the production API endpoint, used by tests.
	BaseURL string
}

// Validate reports the first missing credential.
func (c Config) Validate() error {
	if c.APIKey == "" {
		return errs.NewValueIsRequiredError("cinetpay api key")
	}
	if c.SiteID == "" {
		return errs.NewValueIsRequiredError("cinetpay site id")
	}
	return nil
}

// Client talks to the CinetPay checkout API. It implements
// ports.PaymentGateway and never touches domain state.
type Client struct {
	httpClient *http.Client
	config     Config
	baseURL    string
}

// NewClient creates a gateway client with the given credentials. The
// HTTP client is injected so callers control timeouts.
func NewClient(httpClient *http.Client, config Config) (*Client, error) {
	if httpClient == nil {
		return nil, errs.NewValueIsRequiredError("http client")
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	baseURL := config.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Client{
		httpClient: httpClient,
		config:     config,
		baseURL:    strings.TrimSuffix(baseURL, "/"),
	}, nil
}

type initiateRequestBody struct {
	APIKey        string `json:"apikey"`
	SiteID        string `json:"site_id"`
	TransactionID string `json:"transaction_id"`
	Amount        string `json:"amount"`
	Currency      string `json:"currency"`
	Channels      string `json:"channels"`
	Designation   string `json:"designation"`
	Description   string `json:"description"`
	CustomerName  string `json:"customer_name"`
	CustomerEmail string `json:"customer_email"`
	CustomerPhone string `json:"customer_phone_number"`
	NotifyURL     string `json:"notify_url"`
	ReturnURL     string `json:"return_url"`
}

type initiateResponseBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Data    struct {
		PaymentURL   string `json:"payment_url"`
		PaymentToken string `json:"payment_token"`
	} `json:"data"`
}

// Initiate opens a checkout session for a pending payment and returns
// the URL the payer must visit. CinetPay answers 201/CREATED/00 on
// success; anything else is an ExternalService error carrying the
// gateway's message.
func (c *Client) Initiate(ctx context.Context, req ports.InitiatePaymentRequest) (ports.InitiatePaymentResponse, error) {
	body := initiateRequestBody{
		APIKey:        c.config.APIKey,
		SiteID:        c.config.SiteID,
		TransactionID: req.Reference,
		Amount:        req.Amount.Amount().String(),
		Currency:      checkoutCurrency,
		Channels:      checkoutChannels,
		Designation:   strings.ToUpper(req.Method.String()),
		Description:   req.Description,
		CustomerName:  req.CustomerName,
		CustomerEmail: req.CustomerEmail,
		CustomerPhone: req.CustomerPhone,
		NotifyURL:     c.config.NotifyURL,
		ReturnURL:     c.config.ReturnURL,
	}

	var response initiateResponseBody
	if err := c.post(ctx, c.baseURL+"/payment", body, &response); err != nil {
		return ports.InitiatePaymentResponse{}, err
	}

	if !isInitiateSuccess(response.Code) {
		return ports.InitiatePaymentResponse{}, errs.NewExternalServiceErrorWithCause(
			"cinetpay",
			fmt.Errorf("initiation refused: code %s: %s", response.Code, response.Message),
		)
	}

	paymentURL := response.Data.PaymentURL
	if paymentURL == "" && response.Data.PaymentToken != "" {
		paymentURL = tokenCheckoutURL + response.Data.PaymentToken
	}

	return ports.InitiatePaymentResponse{
		PaymentURL:       paymentURL,
		PaymentToken:     response.Data.PaymentToken,
		GatewayReference: req.Reference,
	}, nil
}

func isInitiateSuccess(code string) bool {
	return code == "201" || code == "CREATED" || code == "00"
}

type checkRequestBody struct {
	APIKey        string `json:"apikey"`
	SiteID        string `json:"site_id"`
	TransactionID string `json:"transaction_id"`
}

type checkResponseBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Data    struct {
		Status  string `json:"status"`
		Message string `json:"message"`
	} `json:"data"`
}

// CheckStatus polls the gateway for the current verdict on a checkout
// session. Vocabulary the adapter does not recognize maps to Unknown so
// handlers leave the payment untouched.
func (c *Client) CheckStatus(ctx context.Context, reference string) (ports.CheckPaymentResult, error) {
	body := checkRequestBody{
		APIKey:        c.config.APIKey,
		SiteID:        c.config.SiteID,
		TransactionID: reference,
	}

	var response checkResponseBody
	if err := c.post(ctx, c.baseURL+"/payment/check", body, &response); err != nil {
		return ports.CheckPaymentResult{}, err
	}

	message := response.Data.Message
	if message == "" {
		message = response.Message
	}

	return ports.CheckPaymentResult{
		Status:  classifyStatus(response.Data.Status),
		Message: message,
	}, nil
}

func classifyStatus(status string) ports.GatewayStatus {
	switch strings.ToUpper(status) {
	case "ACCEPTED", "SUCCESS":
		return ports.GatewayStatusAccepted
	case "REFUSED", "FAILED":
		return ports.GatewayStatusRefused
	case "PENDING", "WAITING_FOR_CUSTOMER", "WAITING_CUSTOMER_PAYMENT", "WAITING_CUSTOMER_TO_VALIDATE":
		return ports.GatewayStatusPending
	case "CANCELLED", "EXPIRED":
		return ports.GatewayStatusCancelled
	default:
		return ports.GatewayStatusUnknown
	}
}

func (c *Client) post(ctx context.Context, url string, body any, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return err
	}

	request, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	request.Header.Set("Content-Type", "application/json")
	request.Header.Set("Accept", "application/json")

	response, err := c.httpClient.Do(request)
	if err != nil {
		return errs.NewExternalServiceErrorWithCause("cinetpay", err)
	}
	defer func() { _ = response.Body.Close() }()

	raw, err := io.ReadAll(response.Body)
	if err != nil {
		return errs.NewExternalServiceErrorWithCause("cinetpay", err)
	}

	if response.StatusCode >= http.StatusInternalServerError {
		return errs.NewExternalServiceErrorWithCause(
			"cinetpay",
			fmt.Errorf("http %d: %s", response.StatusCode, string(raw)),
		)
	}

	if err = json.Unmarshal(raw, out); err != nil {
		return errs.NewExternalServiceErrorWithCause("cinetpay", err)
	}

	return nil
}
