package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"net/http"
	"net/url"
	"strconv"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	catalogerrors "go-storefront-api/internal/catalog/errors"
)

const (
	productsCacheKey = "catalog:products"
	cacheTTL         = 5 * time.Minute
)

// rawProduct is the wire shape of the external catalog service.
type rawProduct struct {
	ID          int     `json:"id"`
	Title       string  `json:"title"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Image       string  `json:"image"`
	Rating      struct {
		Rate  float64 `json:"rate"`
		Count int     `json:"count"`
	} `json:"rating"`
}

var brandsByCategory = map[string][]string{
	"men's clothing":   {"StyleMax", "UrbanFit", "ClassicWear", "ModernMan"},
	"women's clothing": {"EliteStyle", "FashionForward", "ChicBoutique", "TrendSetter"},
	"jewelery":         {"LuxJewels", "DiamondCraft", "GoldStandard", "PreciousGems"},
	"electronics":      {"TechPro", "DigitalMax", "InnovateTech", "FutureTech"},
}

type derivedFields struct {
	Brand        string
	CountInStock int
	Featured     bool
}

// Client fetches from the external catalog service and transforms each raw
// record into the Product shape. Derived fields are memoized per product id
// so repeated fetches stay stable for the process lifetime. The full product
// list is cached in Redis when a client is configured.
type Client struct {
	baseURL string
	httpc   *http.Client
	cache   *redis.Client // nil disables caching
	logger  *zap.Logger

	mu      sync.Mutex
	rng     *rand.Rand
	derived map[int]derivedFields
}

func NewClient(baseURL string, cache *redis.Client, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		baseURL: baseURL,
		httpc:   &http.Client{Timeout: 10 * time.Second},
		cache:   cache,
		logger:  logger.Named("catalog.client"),
		rng:     rand.New(rand.NewSource(time.Now().UnixNano())),
		derived: map[int]derivedFields{},
	}
}

func (c *Client) GetProducts(ctx context.Context) ([]Product, error) {
	if cached, ok := c.cachedRaw(ctx); ok {
		return c.transformAll(cached), nil
	}

	var raws []rawProduct
	if err := c.getJSON(ctx, "/products", &raws); err != nil {
		c.logger.Warn("products fetch failed", zap.Error(err))
		return nil, catalogerrors.ErrFetchFailed
	}

	c.storeRaw(ctx, raws)
	return c.transformAll(raws), nil
}

func (c *Client) GetProductByID(ctx context.Context, id string) (Product, error) {
	var raw rawProduct
	if err := c.getJSON(ctx, "/products/"+url.PathEscape(id), &raw); err != nil {
		c.logger.Warn("product fetch failed", zap.String("id", id), zap.Error(err))
		return Product{}, catalogerrors.ErrProductNotFound
	}
	if raw.ID == 0 {
		// the upstream returns an empty body for unknown ids
		return Product{}, catalogerrors.ErrProductNotFound
	}
	return c.transform(raw), nil
}

func (c *Client) GetProductsByCategory(ctx context.Context, category string) ([]Product, error) {
	var raws []rawProduct
	if err := c.getJSON(ctx, "/products/category/"+url.PathEscape(category), &raws); err != nil {
		c.logger.Warn("category fetch failed", zap.String("category", category), zap.Error(err))
		return nil, catalogerrors.ErrFetchFailed
	}
	return c.transformAll(raws), nil
}

func (c *Client) GetCategories(ctx context.Context) ([]string, error) {
	var categories []string
	if err := c.getJSON(ctx, "/products/categories", &categories); err != nil {
		c.logger.Warn("categories fetch failed", zap.Error(err))
		return nil, catalogerrors.ErrCategoriesFetchFailed
	}
	return categories, nil
}

// ========================
// transform
// ========================

func (c *Client) transformAll(raws []rawProduct) []Product {
	products := make([]Product, 0, len(raws))
	for _, raw := range raws {
		products = append(products, c.transform(raw))
	}
	return products
}

func (c *Client) transform(raw rawProduct) Product {
	d := c.derivedFor(raw.ID, raw.Category)

	rating := raw.Rating.Rate
	if rating == 0 {
		rating = 4.0
	}

	return Product{
		ID:           strconv.Itoa(raw.ID),
		Name:         raw.Title,
		Description:  raw.Description,
		Price:        decimal.NewFromFloat(raw.Price),
		Images:       []string{raw.Image, raw.Image},
		Category:     raw.Category,
		Brand:        d.Brand,
		Rating:       rating,
		CountInStock: d.CountInStock,
		Featured:     d.Featured,
	}
}

func (c *Client) derivedFor(id int, category string) derivedFields {
	c.mu.Lock()
	defer c.mu.Unlock()

	if d, ok := c.derived[id]; ok {
		return d
	}

	brands, ok := brandsByCategory[category]
	if !ok {
		brands = []string{"Premium Brand"}
	}

	d := derivedFields{
		Brand:        brands[c.rng.Intn(len(brands))],
		CountInStock: c.rng.Intn(50) + 10,
		Featured:     c.rng.Float64() > 0.7,
	}
	c.derived[id] = d
	return d
}

// ========================
// transport + cache
// ========================

func (c *Client) getJSON(ctx context.Context, path string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := c.httpc.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return fmt.Errorf("catalog responded %d for %s", res.StatusCode, path)
	}

	return json.NewDecoder(res.Body).Decode(out)
}

func (c *Client) cachedRaw(ctx context.Context) ([]rawProduct, bool) {
	if c.cache == nil {
		return nil, false
	}

	payload, err := c.cache.Get(ctx, productsCacheKey).Bytes()
	if err != nil {
		return nil, false
	}

	var raws []rawProduct
	if err := json.Unmarshal(payload, &raws); err != nil {
		return nil, false
	}
	return raws, true
}

func (c *Client) storeRaw(ctx context.Context, raws []rawProduct) {
	if c.cache == nil {
		return
	}

	payload, err := json.Marshal(raws)
	if err != nil {
		return
	}

	if err := c.cache.Set(ctx, productsCacheKey, payload, cacheTTL).Err(); err != nil {
		c.logger.Warn("cache write failed", zap.Error(err))
	}
}
