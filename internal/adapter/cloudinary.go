package adapter

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/go-media-keeper/internal/config"
	"github.com/MKhiriev/go-media-keeper/internal/logger"
	"github.com/MKhiriev/go-media-keeper/internal/utils"
	"github.com/MKhiriev/go-media-keeper/models"
)

type cloudinaryHost struct {
	client *utils.HTTPClient

	cloudName string
	apiKey    string
	apiSecret string

	now    func() time.Time
	logger *logger.Logger
}

type cloudinaryUploadResponse struct {
	PublicID     string `json:"public_id"`
	SecureURL    string `json:"secure_url"`
	Format       string `json:"format"`
	ResourceType string `json:"resource_type"`
	Bytes        int64  `json:"bytes"`
	Width        int    `json:"width"`
	Height       int    `json:"height"`
	Folder       string `json:"folder"`
	AssetFolder  string `json:"asset_folder"`
}

type cloudinaryDestroyResponse struct {
	Result string `json:"result"`
}

// NewCloudinaryHost constructs a [MediaHost] talking to the Cloudinary upload
// API with signed requests.
func NewCloudinaryHost(cfg config.Adapter, logger *logger.Logger) (MediaHost, error) {
	baseURL, err := normalizeBaseURL(cfg.Cloudinary.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid cloudinary base url: %w", err)
	}

	client := utils.NewHTTPClient(
		utils.WithBaseURL(baseURL),
		utils.WithTimeout(cfg.RequestTimeout),
	)

	return &cloudinaryHost{
		client:    client,
		cloudName: cfg.Cloudinary.CloudName,
		apiKey:    cfg.Cloudinary.APIKey,
		apiSecret: cfg.Cloudinary.APISecret,
		now:       time.Now,
		logger:    logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Upload implements [MediaHost]. The resource type is detected by Cloudinary
// ("auto" endpoint).
func (c *cloudinaryHost) Upload(ctx context.Context, folder string, file models.UploadedFile) (models.HostedObject, error) {
	log := logger.FromContext(ctx)

	params := c.signedParams(map[string]string{"folder": folder})

	resp, err := c.client.R().
		SetContext(ctx).
		SetMultipartField("file", file.Name, file.ContentType, file.Content).
		SetFormData(params).
		Post(fmt.Sprintf("/v1_1/%s/auto/upload", c.cloudName))
	if err != nil {
		log.Err(err).Str("func", "*cloudinaryHost.Upload").Str("folder", folder).Msg("upload request failed")
		return models.HostedObject{}, fmt.Errorf("%w: %w", ErrMediaHostRequest, err)
	}
	if err = mapHTTPError(resp); err != nil {
		log.Err(err).Str("func", "*cloudinaryHost.Upload").Int("status", resp.StatusCode()).Msg("upload rejected")
		return models.HostedObject{}, err
	}

	var uploaded cloudinaryUploadResponse
	if err = json.Unmarshal(resp.Body(), &uploaded); err != nil {
		return models.HostedObject{}, fmt.Errorf("%w: decode upload response: %w", ErrMediaHostRequest, err)
	}

	hostedFolder := uploaded.Folder
	if hostedFolder == "" {
		hostedFolder = uploaded.AssetFolder
	}
	if hostedFolder == "" {
		hostedFolder = folder
	}

	return models.HostedObject{
		PublicID:     uploaded.PublicID,
		SecureURL:    uploaded.SecureURL,
		Format:       uploaded.Format,
		ResourceType: uploaded.ResourceType,
		Bytes:        uploaded.Bytes,
		Width:        optionalInt(uploaded.Width),
		Height:       optionalInt(uploaded.Height),
		Folder:       optionalString(hostedFolder),
	}, nil
}

// Delete implements [MediaHost]. An empty resourceType is treated as "image",
// Cloudinary's own default.
func (c *cloudinaryHost) Delete(ctx context.Context, publicID, resourceType string) error {
	log := logger.FromContext(ctx)

	if resourceType == "" {
		resourceType = "image"
	}

	params := c.signedParams(map[string]string{"public_id": publicID})

	resp, err := c.client.R().
		SetContext(ctx).
		SetFormData(params).
		Post(fmt.Sprintf("/v1_1/%s/%s/destroy", c.cloudName, resourceType))
	if err != nil {
		log.Err(err).Str("func", "*cloudinaryHost.Delete").Str("public_id", publicID).Msg("destroy request failed")
		return fmt.Errorf("%w: %w", ErrMediaHostRequest, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}

	var destroyed cloudinaryDestroyResponse
	if err = json.Unmarshal(resp.Body(), &destroyed); err != nil {
		return fmt.Errorf("%w: decode destroy response: %w", ErrMediaHostRequest, err)
	}

	switch destroyed.Result {
	case "ok":
		return nil
	case "not found":
		return ErrHostedObjectNotFound
	default:
		return fmt.Errorf("%w: unexpected destroy result %q", ErrMediaHostRejected, destroyed.Result)
	}
}

// signedParams adds timestamp, api_key and signature to params.
func (c *cloudinaryHost) signedParams(params map[string]string) map[string]string {
	params["timestamp"] = strconv.FormatInt(c.now().Unix(), 10)
	params["signature"] = signParams(params, c.apiSecret)
	params["api_key"] = c.apiKey

	return params
}

// signParams computes the Cloudinary request signature: the non-empty params
// sorted by name, joined as "k=v&k=v", followed by the secret, SHA-1 hex.
func signParams(params map[string]string, secret string) string {
	keys := make([]string, 0, len(params))
	for k, v := range params {
		if v == "" {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)

	pairs := make([]string, 0, len(keys))
	for _, k := range keys {
		pairs = append(pairs, k+"="+params[k])
	}

	sum := sha1.Sum([]byte(strings.Join(pairs, "&") + secret))
	return hex.EncodeToString(sum[:])
}
