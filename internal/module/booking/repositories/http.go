package repositories

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"booking-engine/internal/module/booking/models/request"
	"booking-engine/internal/module/booking/models/response"
	"booking-engine/internal/pkg/errors"

	"github.com/goccy/go-json"
	"go.elastic.co/apm"
	"go.uber.org/zap"
)

// ValidateToken asks the user service who owns token.
func (r *repositories) ValidateToken(ctx context.Context, token string) (response.UserServiceValidate, error) {
	endpoint := fmt.Sprintf("http://%s:%s/api/private/token/validate?token=%s",
		r.cfgUserService.Host, r.cfgUserService.Port, url.QueryEscape(token))
	resp, err := r.httpClient.Get(endpoint)
	if err != nil {
		r.log.Error(ctx, "error call user service", err)
		return response.UserServiceValidate{}, errors.UnauthorizedError("error validate token")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		r.log.Warn(ctx, "invalid token", zap.Int("status", resp.StatusCode))
		return response.UserServiceValidate{}, errors.UnauthorizedError("invalid token")
	}

	var respData struct {
		Data response.UserServiceValidate `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&respData); err != nil {
		r.log.Error(ctx, "error decode user service response", err)
		return response.UserServiceValidate{}, errors.UnauthorizedError("error validate token")
	}
	if !respData.Data.IsValid {
		return response.UserServiceValidate{}, errors.UnauthorizedError("invalid token")
	}
	return respData.Data, nil
}

func (r *repositories) paymentRequest(ctx context.Context, method, path string, body interface{}, out interface{}) error {
	span, ctx := apm.StartSpan(ctx, method+" "+path, "external.payment")
	defer span.End()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return errors.InternalServerError("error encode payment request")
		}
		reader = bytes.NewReader(data)
	}

	endpoint := strings.TrimRight(r.cfgPaymentProvider.BaseURL, "/") + path
	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return errors.InternalServerError("error build payment request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("access_token", r.cfgPaymentProvider.APIKey)

	resp, err := r.httpClient.Do(req)
	if err != nil {
		r.log.Error(ctx, "error call payment provider", err, zap.String("path", path))
		return errors.InternalServerError("payment provider unavailable")
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return errors.NotFoundError("charge not found at payment provider")
	case resp.StatusCode >= 400:
		r.log.Warn(ctx, "payment provider rejected request", zap.Int("status", resp.StatusCode), zap.String("path", path))
		return errors.InternalServerError(fmt.Sprintf("payment provider answered %d", resp.StatusCode))
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		r.log.Error(ctx, "error decode payment provider response", err)
		return errors.InternalServerError("error decode payment provider response")
	}
	return nil
}

// CreateCharge opens an external charge for the wallet deficit.
func (r *repositories) CreateCharge(ctx context.Context, req request.Charge) (response.Charge, error) {
	payload := struct {
		request.Charge
		BillingType string `json:"billingType"`
	}{Charge: req, BillingType: "PIX"}

	var charge response.Charge
	if err := r.paymentRequest(ctx, http.MethodPost, "/v3/payments", payload, &charge); err != nil {
		return response.Charge{}, err
	}
	return charge, nil
}

// CancelCharge implements Repositories.
func (r *repositories) CancelCharge(ctx context.Context, chargeID string) error {
	return r.paymentRequest(ctx, http.MethodDelete, "/v3/payments/"+url.PathEscape(chargeID), nil, nil)
}

// GetCharge implements Repositories.
func (r *repositories) GetCharge(ctx context.Context, chargeID string) (response.Charge, error) {
	var charge response.Charge
	if err := r.paymentRequest(ctx, http.MethodGet, "/v3/payments/"+url.PathEscape(chargeID), nil, &charge); err != nil {
		return response.Charge{}, err
	}
	return charge, nil
}
