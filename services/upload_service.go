package services

import (
	"fmt"
	"strconv"
	"time"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

type UploadSignature struct {
	Signature string `json:"signature"`
	Timestamp int64  `json:"timestamp"`
	APIKey    string `json:"api_key"`
	CloudName string `json:"cloud_name"`
	Folder    string `json:"folder"`
}

// UploadSigner lets browsers upload class photos straight to Cloudinary
// without ever seeing the API secret.
type UploadSigner struct {
	cld    *cloudinary.Cloudinary
	folder string
	now    func() time.Time
}

func NewUploadSigner(cloudinaryURL, folder string) (*UploadSigner, error) {
	cld, err := cloudinary.NewFromURL(cloudinaryURL)
	if err != nil {
		return nil, fmt.Errorf("init cloudinary: %w", err)
	}
	return &UploadSigner{cld: cld, folder: folder, now: time.Now}, nil
}

func (s *UploadSigner) Sign() (*UploadSignature, error) {
	params, err := api.StructToParams(uploader.UploadParams{Folder: s.folder})
	if err != nil {
		return nil, fmt.Errorf("prepare params: %w", err)
	}

	timestamp := s.now().Unix()
	params.Set("timestamp", strconv.FormatInt(timestamp, 10))

	signature, err := api.SignParameters(params, s.cld.Config.Cloud.APISecret)
	if err != nil {
		return nil, fmt.Errorf("sign params: %w", err)
	}

	return &UploadSignature{
		Signature: signature,
		Timestamp: timestamp,
		APIKey:    s.cld.Config.Cloud.APIKey,
		CloudName: s.cld.Config.Cloud.CloudName,
		Folder:    s.folder,
	}, nil
}
