package services

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// RemoteError uzak içerik deposu hataları.
type RemoteError string

func (e RemoteError) Error() string { return string(e) }

const (
	ErrRemoteEmpty      RemoteError = "uzak tabloda kayıt yok"
	ErrRemoteBadStatus  RemoteError = "uzak depo beklenmeyen durum kodu döndürdü"
	ErrRemoteUnreadable RemoteError = "uzak depo yanıtı çözümlenemedi"
)

// IRemoteClient alan bazlı uzak tablo okumaları için arayüz.
// Tekil alanlar (admin_core, event_summary) tek satır, liste alanları çok
// satır okur; satır şekli ilgili dilimin varlık şekline birebir eşlenir.
type IRemoteClient interface {
	FetchSingle(ctx context.Context, table string, out any) error
	FetchList(ctx context.Context, table string, out any) error
}

// RemoteClient hosted backend'in REST yüzeyini okur
// (GET {base}/rest/v1/{tablo}?select=*). Yazma yapmaz; köprü yalnızca
// uzaktan yerele aynalar.
type RemoteClient struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

// NewRemoteClient yeni bir RemoteClient örneği oluşturur.
func NewRemoteClient(baseURL, apiKey string) *RemoteClient {
	return &RemoteClient{
		baseURL: baseURL,
		apiKey:  apiKey,
		http:    &http.Client{Timeout: 15 * time.Second},
	}
}

// FetchSingle tek satırlık tabloyu okur ve ilk satırı out'a çözer.
func (c *RemoteClient) FetchSingle(ctx context.Context, table string, out any) error {
	raw, err := c.fetch(ctx, table, 1)
	if err != nil {
		return err
	}

	var rows []json.RawMessage
	if err := json.Unmarshal(raw, &rows); err != nil {
		return fmt.Errorf("%w: %v", ErrRemoteUnreadable, err)
	}
	if len(rows) == 0 {
		return ErrRemoteEmpty
	}
	if err := json.Unmarshal(rows[0], out); err != nil {
		return fmt.Errorf("%w: %v", ErrRemoteUnreadable, err)
	}
	return nil
}

// FetchList çok satırlı tabloyu okur ve satır dizisini out'a çözer.
func (c *RemoteClient) FetchList(ctx context.Context, table string, out any) error {
	raw, err := c.fetch(ctx, table, 0)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("%w: %v", ErrRemoteUnreadable, err)
	}
	return nil
}

func (c *RemoteClient) fetch(ctx context.Context, table string, limit int) ([]byte, error) {
	url := fmt.Sprintf("%s/rest/v1/%s?select=*", c.baseURL, table)
	if limit > 0 {
		url = fmt.Sprintf("%s&limit=%d", url, limit)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	if c.apiKey != "" {
		req.Header.Set("apikey", c.apiKey)
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: %s -> %d", ErrRemoteBadStatus, table, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 8<<20))
	if err != nil {
		return nil, err
	}
	return body, nil
}

var _ IRemoteClient = (*RemoteClient)(nil)
