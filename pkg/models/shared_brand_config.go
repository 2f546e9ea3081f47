package models

import (
	"context"
	"strconv"

	"github.com/edukit/go-canvas/pkg/canvas"
	"github.com/edukit/go-canvas/pkg/dto"
)

// SharedBrandConfig is a named theme shared within an account.
type SharedBrandConfig struct {
	ID             int64  `json:"id"`
	AccountID      int64  `json:"account_id"`
	BrandConfigMD5 string `json:"brand_config_md5"`
	Name           string `json:"name"`
}

// CreateSharedBrandConfig shares a saved brand config under the account.
// The DTO is validated before anything is sent.
func CreateSharedBrandConfig(ctx context.Context, c *canvas.Client, accountID int64, d *dto.SharedBrandConfigDTO) (*SharedBrandConfig, error) {
	fields, err := d.APIFields()
	if err != nil {
		return nil, err
	}
	path := "accounts/" + strconv.FormatInt(accountID, 10) + "/shared_brand_configs"
	return postForm[SharedBrandConfig](ctx, c, path, fields)
}

// Update renames or repoints the shared config and refreshes the receiver.
func (s *SharedBrandConfig) Update(ctx context.Context, c *canvas.Client, d *dto.SharedBrandConfigDTO) error {
	fields, err := d.UpdateAPIFields()
	if err != nil {
		return err
	}
	path := "accounts/" + strconv.FormatInt(s.AccountID, 10) +
		"/shared_brand_configs/" + strconv.FormatInt(s.ID, 10)
	updated, err := putForm[SharedBrandConfig](ctx, c, path, fields)
	if err != nil {
		return err
	}
	*s = *updated
	return nil
}

// Delete unshares the config. The unshare endpoint is account-less.
func (s *SharedBrandConfig) Delete(ctx context.Context, c *canvas.Client) error {
	return c.Delete(ctx, "shared_brand_configs/"+strconv.FormatInt(s.ID, 10), nil, nil)
}
