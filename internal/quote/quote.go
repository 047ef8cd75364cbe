// Package quote fetches a short motivational quote, falling back to a
// built-in list whenever the remote service is unreachable.
package quote

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// DefaultURL is the remote quote service queried first.
const DefaultURL = "https://api.quotable.io/random?tags=motivational,success,wisdom,inspirational"

// Quote is a single quote with attribution.
type Quote struct {
	Content string `json:"content"`
	Author  string `json:"author"`
}

// fallback mixes Indonesian and English quotes, shown whenever the
// remote service cannot be reached.
var fallback = []Quote{
	{Content: "Jangan menunggu kesempatan, tapi ciptakanlah kesempatan itu.", Author: "George Bernard Shaw"},
	{Content: "Kegagalan adalah kesempatan untuk memulai lagi dengan lebih cerdas.", Author: "Henry Ford"},
	{Content: "Pendidikan adalah senjata paling ampuh yang bisa kamu gunakan untuk mengubah dunia.", Author: "Nelson Mandela"},
	{Content: "Ilmu itu lebih baik daripada harta. Ilmu menjaga engkau, sedangkan harta engkau yang menjaganya.", Author: "Ali bin Abi Thalib"},
	{Content: "Kerja keras mengalahkan bakat ketika bakat tidak bekerja keras.", Author: "Tim Notke"},
	{Content: "Disiplin adalah jembatan antara tujuan dan pencapaian.", Author: "Jim Rohn"},
	{Content: "The only way to do great work is to love what you do.", Author: "Steve Jobs"},
	{Content: "Success is not final, failure is not fatal: it is the courage to continue that counts.", Author: "Winston Churchill"},
	{Content: "The future belongs to those who believe in the beauty of their dreams.", Author: "Eleanor Roosevelt"},
	{Content: "Don't watch the clock; do what it does. Keep going.", Author: "Sam Levenson"},
	{Content: "The way to get started is to quit talking and begin doing.", Author: "Walt Disney"},
	{Content: "Believe you can and you're halfway there.", Author: "Theodore Roosevelt"},
	{Content: "The best time to plant a tree was 20 years ago. The second best time is now.", Author: "Chinese Proverb"},
	{Content: "Great things never come from comfort zones.", Author: "Unknown"},
}

// Provider fetches quotes over HTTP.
type Provider struct {
	client *http.Client
	url    string
	log    *zap.Logger
}

func NewProvider(log *zap.Logger) *Provider {
	return &Provider{
		client: &http.Client{Timeout: 5 * time.Second},
		url:    DefaultURL,
		log:    log,
	}
}

// NewProviderURL builds a provider against a custom endpoint.
func NewProviderURL(url string, client *http.Client, log *zap.Logger) *Provider {
	if client == nil {
		client = &http.Client{Timeout: 5 * time.Second}
	}
	return &Provider{client: client, url: url, log: log}
}

// Daily returns a quote from the remote service, or a random built-in
// quote when the fetch fails for any reason. It never returns an error.
func (p *Provider) Daily(ctx context.Context) Quote {
	q, err := p.fetch(ctx)
	if err != nil {
		p.log.Debug("quote fetch failed, using fallback", zap.Error(err))
		return fallback[rand.Intn(len(fallback))]
	}
	return q
}

func (p *Provider) fetch(ctx context.Context) (Quote, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.url, nil)
	if err != nil {
		return Quote{}, fmt.Errorf("build quote request: %w", err)
	}

	res, err := p.client.Do(req)
	if err != nil {
		return Quote{}, fmt.Errorf("fetch quote: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return Quote{}, fmt.Errorf("quote service returned %d", res.StatusCode)
	}

	var q Quote
	if err := json.NewDecoder(res.Body).Decode(&q); err != nil {
		return Quote{}, fmt.Errorf("decode quote: %w", err)
	}
	if q.Content == "" {
		return Quote{}, fmt.Errorf("quote service returned empty content")
	}
	return q, nil
}
