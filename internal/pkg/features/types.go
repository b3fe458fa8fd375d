package features

import "github.com/ManuelReschke/featurehub/internal/pkg/entitlements"

const (
	DefaultSubscriptionPlan    = "sandbox"
	DefaultKnowledgeRateLimit  = 10
	DefaultDocsProcessingLevel = "standard"
)

type SubscriptionView struct {
	Plan     string `json:"plan"`
	Interval string `json:"interval"`
}

type BillingView struct {
	Enabled      bool             `json:"enabled"`
	Subscription SubscriptionView `json:"subscription"`
}

type EducationView struct {
	Enabled   bool `json:"enabled"`
	Activated bool `json:"activated"`
}

// LimitationView is a quota: current usage and the granted maximum.
type LimitationView struct {
	Size  int `json:"size"`
	Limit int `json:"limit"`
}

// FeatureView is the tenant-scoped feature and entitlement state.
type FeatureView struct {
	Billing                   BillingView    `json:"billing"`
	Education                 EducationView  `json:"education"`
	Members                   LimitationView `json:"members"`
	Apps                      LimitationView `json:"apps"`
	VectorSpace               LimitationView `json:"vector_space"`
	KnowledgeRateLimit        int            `json:"knowledge_rate_limit"`
	AnnotationQuotaLimit      LimitationView `json:"annotation_quota_limit"`
	DocumentsUploadQuota      LimitationView `json:"documents_upload_quota"`
	DocsProcessing            string         `json:"docs_processing"`
	CanReplaceLogo            bool           `json:"can_replace_logo"`
	ModelLoadBalancingEnabled bool           `json:"model_load_balancing_enabled"`
	DatasetOperatorEnabled    bool           `json:"dataset_operator_enabled"`
}

func newFeatureView() *FeatureView {
	return &FeatureView{
		Billing: BillingView{
			Subscription: SubscriptionView{Plan: DefaultSubscriptionPlan},
		},
		Members:              LimitationView{Limit: 1},
		Apps:                 LimitationView{Limit: 10},
		VectorSpace:          LimitationView{Limit: 5},
		KnowledgeRateLimit:   DefaultKnowledgeRateLimit,
		AnnotationQuotaLimit: LimitationView{Limit: 10},
		DocumentsUploadQuota: LimitationView{Limit: 50},
		DocsProcessing:       DefaultDocsProcessingLevel,
	}
}

type KnowledgeRateLimitView struct {
	Enabled          bool   `json:"enabled"`
	Limit            int    `json:"limit"`
	SubscriptionPlan string `json:"subscription_plan"`
}

type LicenseView struct {
	Status    entitlements.LicenseStatus `json:"status"`
	ExpiredAt string                     `json:"expired_at"`
}

// SystemFeatureView is the deployment-wide login, SSO and license state.
type SystemFeatureView struct {
	SSOEnforcedForSignin         bool        `json:"sso_enforced_for_signin"`
	SSOEnforcedForSigninProtocol string      `json:"sso_enforced_for_signin_protocol"`
	SSOEnforcedForWeb            bool        `json:"sso_enforced_for_web"`
	SSOEnforcedForWebProtocol    string      `json:"sso_enforced_for_web_protocol"`
	EnableWebSSOSwitchComponent  bool        `json:"enable_web_sso_switch_component"`
	EnableMarketplace            bool        `json:"enable_marketplace"`
	MaxPluginPackageSize         int         `json:"max_plugin_package_size"`
	EnableEmailCodeLogin         bool        `json:"enable_email_code_login"`
	EnableEmailPasswordLogin     bool        `json:"enable_email_password_login"`
	EnableSocialOAuthLogin       bool        `json:"enable_social_oauth_login"`
	IsAllowRegister              bool        `json:"is_allow_register"`
	IsAllowCreateWorkspace       bool        `json:"is_allow_create_workspace"`
	IsEmailSetup                 bool        `json:"is_email_setup"`
	License                      LicenseView `json:"license"`
	IsCustomAuth2                string      `json:"is_custom_auth2"`
	IsCustomAuth2Logout          string      `json:"is_custom_auth2_logout"`
	DingTalkClientID             string      `json:"ding_talk_client_id"`
	DingTalkCorpID               string      `json:"ding_talk_corp_id"`
	DingTalk                     bool        `json:"ding_talk"`
}

func newSystemFeatureView(maxPluginPackageSize int) *SystemFeatureView {
	return &SystemFeatureView{
		MaxPluginPackageSize:     maxPluginPackageSize,
		EnableEmailPasswordLogin: true,
		License:                  LicenseView{Status: entitlements.LicenseNone},
	}
}
