package shmsdk

import (
	"context"
	"net/http"
	"net/url"
)

// ListStakeholders returns the directory in insertion order.
func (c *SDKClient) ListStakeholders(ctx context.Context) (*ListStakeholdersResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/v1/stakeholders", nil, nil)
	if err != nil {
		return nil, err
	}

	var list ListStakeholdersResponse
	if err := decodeJSON(resp, &list, http.StatusOK); err != nil {
		return nil, err
	}

	return &list, nil
}

// FindOrCreateStakeholder returns the stakeholder owning req.Email, creating
// it first if needed.
func (c *SDKClient) FindOrCreateStakeholder(ctx context.Context, req CreateStakeholderRequest) (*Stakeholder, error) {
	resp, err := c.doJSON(ctx, http.MethodPost, "/v1/stakeholders", req)
	if err != nil {
		return nil, err
	}

	var s Stakeholder
	if err := decodeJSON(resp, &s, http.StatusOK); err != nil {
		return nil, err
	}

	return &s, nil
}

func (c *SDKClient) GetStakeholder(ctx context.Context, id string) (*Stakeholder, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/v1/stakeholders/"+url.PathEscape(id), nil, nil)
	if err != nil {
		return nil, err
	}

	var s Stakeholder
	if err := decodeJSON(resp, &s, http.StatusOK); err != nil {
		return nil, err
	}

	return &s, nil
}
