package billing

// Info is the subscription payload returned by the billing API.
// Pointer fields are nil when the key was absent from the response.
type Info struct {
	Enabled                   *bool         `json:"enabled"`
	Subscription              *Subscription `json:"subscription"`
	Members                   *Quota        `json:"members"`
	Apps                      *Quota        `json:"apps"`
	VectorSpace               *Quota        `json:"vector_space"`
	DocumentsUploadQuota      *Quota        `json:"documents_upload_quota"`
	AnnotationQuotaLimit      *Quota        `json:"annotation_quota_limit"`
	DocsProcessing            *string       `json:"docs_processing"`
	CanReplaceLogo            *bool         `json:"can_replace_logo"`
	ModelLoadBalancingEnabled *bool         `json:"model_load_balancing_enabled"`
	KnowledgeRateLimit        *RateLimit    `json:"knowledge_rate_limit"`
}

type Subscription struct {
	Plan      *string `json:"plan"`
	Interval  *string `json:"interval"`
	Education *bool   `json:"education"`
}

// Quota is a usage/limit pair. Both numbers are copied together.
type Quota struct {
	Size  int `json:"size"`
	Limit int `json:"limit"`
}

type RateLimit struct {
	Limit *int `json:"limit"`
}

// KnowledgeRateLimit is the payload of the knowledge-rate-limit endpoint.
type KnowledgeRateLimit struct {
	Limit            *int    `json:"limit"`
	SubscriptionPlan *string `json:"subscription_plan"`
}
