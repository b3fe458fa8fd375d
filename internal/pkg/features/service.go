package features

import (
	"context"
	"fmt"
	"strconv"
	"time"

	fiberlog "github.com/gofiber/fiber/v2/log"

	"github.com/ManuelReschke/featurehub/app/models"
	"github.com/ManuelReschke/featurehub/internal/pkg/billing"
	"github.com/ManuelReschke/featurehub/internal/pkg/config"
	"github.com/ManuelReschke/featurehub/internal/pkg/enterprise"
	"github.com/ManuelReschke/featurehub/internal/pkg/metrics"
)

type BillingClient interface {
	GetInfo(ctx context.Context, tenantID string) (*billing.Info, error)
	GetKnowledgeRateLimit(ctx context.Context, tenantID string) (*billing.KnowledgeRateLimit, error)
}

type EnterpriseClient interface {
	GetInfo(ctx context.Context) (*enterprise.Info, error)
}

// IntegrationStore lists third-party login integrations that are switched on.
type IntegrationStore interface {
	ListEnabled() ([]models.SystemIntegration, error)
}

// Service builds feature views by layering env defaults, billing and enterprise data.
// It holds no mutable state; every call builds fresh views.
type Service struct {
	cfg          *config.Config
	billing      BillingClient
	enterprise   EnterpriseClient
	integrations IntegrationStore
	publisher    RequestContextPublisher
	metrics      metrics.CollaboratorMetrics
}

// NewService creates a feature service from injected collaborators.
// publisher and m may be nil.
func NewService(
	cfg *config.Config,
	billingClient BillingClient,
	enterpriseClient EnterpriseClient,
	integrations IntegrationStore,
	publisher RequestContextPublisher,
	m metrics.CollaboratorMetrics,
) *Service {
	if m == nil {
		m = metrics.Noop{}
	}
	return &Service{
		cfg:          cfg,
		billing:      billingClient,
		enterprise:   enterpriseClient,
		integrations: integrations,
		publisher:    publisher,
		metrics:      m,
	}
}

// GetFeatures returns the feature view of a tenant.
func (s *Service) GetFeatures(ctx context.Context, tenantID string) (*FeatureView, error) {
	features := newFeatureView()
	s.fulfillParamsFromEnv(features)

	if s.cfg.BillingEnabled && tenantID != "" {
		if err := s.fulfillParamsFromBilling(ctx, features, tenantID); err != nil {
			return nil, err
		}
	}
	return features, nil
}

// GetKnowledgeRateLimit returns the knowledge base rate limit of a tenant.
func (s *Service) GetKnowledgeRateLimit(ctx context.Context, tenantID string) (*KnowledgeRateLimitView, error) {
	view := &KnowledgeRateLimitView{Limit: DefaultKnowledgeRateLimit}
	if !s.cfg.BillingEnabled || tenantID == "" {
		return view, nil
	}

	info, err := s.billing.GetKnowledgeRateLimit(ctx, tenantID)
	if err != nil {
		return nil, fmt.Errorf("get knowledge rate limit for tenant %s: %w", tenantID, err)
	}

	view.Enabled = true
	view.SubscriptionPlan = DefaultSubscriptionPlan
	applyIfPresent(&view.Limit, info.Limit)
	applyIfPresent(&view.SubscriptionPlan, info.SubscriptionPlan)
	return view, nil
}

// GetSystemFeatures returns the deployment-wide feature view. requestHostURL is the
// scheme+host of the incoming request and is published for the OAuth2 login flow.
func (s *Service) GetSystemFeatures(ctx context.Context, requestHostURL string) (*SystemFeatureView, error) {
	s.publishAPIHost(ctx, requestHostURL)

	features := newSystemFeatureView(s.cfg.PluginMaxPackageSize)
	if err := s.fulfillSystemParamsFromEnv(features); err != nil {
		return nil, err
	}

	if s.cfg.EnterpriseEnabled {
		features.EnableWebSSOSwitchComponent = true
		if err := s.fulfillParamsFromEnterprise(ctx, features); err != nil {
			return nil, err
		}
	}

	if s.cfg.MarketplaceEnabled {
		features.EnableMarketplace = true
	}
	return features, nil
}

func (s *Service) publishAPIHost(ctx context.Context, requestHostURL string) {
	if s.publisher == nil {
		return
	}
	host := ResolveAPIHost(requestHostURL, s.cfg.ConsoleWebURL)
	if err := s.publisher.PublishAPIHost(ctx, host); err != nil {
		fiberlog.Warnf("[Features] failed to publish api_host %q: %v", host, err)
	}
}

func (s *Service) fulfillParamsFromEnv(features *FeatureView) {
	features.CanReplaceLogo = s.cfg.CanReplaceLogo
	features.ModelLoadBalancingEnabled = s.cfg.ModelLBEnabled
	features.DatasetOperatorEnabled = s.cfg.DatasetOperatorEnabled
	features.Education.Enabled = s.cfg.EducationEnabled
}

func (s *Service) fulfillSystemParamsFromEnv(features *SystemFeatureView) error {
	features.EnableEmailCodeLogin = s.cfg.EnableEmailCodeLogin
	features.EnableEmailPasswordLogin = s.cfg.EnableEmailPasswordLogin
	features.EnableSocialOAuthLogin = s.cfg.EnableSocialOAuthLogin
	features.IsAllowRegister = s.cfg.AllowRegister
	features.IsAllowCreateWorkspace = s.cfg.AllowCreateWorkspace
	features.IsEmailSetup = s.cfg.IsEmailSetup()

	return s.fulfillParamsFromIntegrations(features)
}

func (s *Service) fulfillParamsFromIntegrations(features *SystemFeatureView) error {
	if s.integrations == nil {
		return nil
	}

	start := time.Now()
	integrations, err := s.integrations.ListEnabled()
	metrics.Observe(s.metrics, "integration_store", start, err)
	if err != nil {
		return fmt.Errorf("list enabled integrations: %w", err)
	}

	for i := range integrations {
		if err := applyIntegration(features, &integrations[i]); err != nil {
			return err
		}
	}
	return nil
}

// applyIntegration writes only the fields owned by the integration's classification.
func applyIntegration(features *SystemFeatureView, integration *models.SystemIntegration) error {
	switch integration.Classify {
	case models.INTEGRATION_DINGTALK:
		features.DingTalkClientID = integration.AppKey
		features.DingTalkCorpID = integration.CorpID
		features.DingTalk = integration.Status
	case models.INTEGRATION_OAUTH2:
		settings, err := integration.OAuth2Settings()
		if err != nil {
			return err
		}
		features.IsCustomAuth2 = strconv.FormatBool(integration.Status)
		features.IsCustomAuth2Logout = settings.LogoutEndpoint()
	default:
		fiberlog.Debugf("[Features] ignoring integration %s with classify %q", integration.ID, integration.Classify)
	}
	return nil
}

func (s *Service) fulfillParamsFromBilling(ctx context.Context, features *FeatureView, tenantID string) error {
	info, err := s.billing.GetInfo(ctx, tenantID)
	if err != nil {
		return fmt.Errorf("get billing info for tenant %s: %w", tenantID, err)
	}

	applyIfPresent(&features.Billing.Enabled, info.Enabled)
	if sub := info.Subscription; sub != nil {
		applyIfPresent(&features.Billing.Subscription.Plan, sub.Plan)
		applyIfPresent(&features.Billing.Subscription.Interval, sub.Interval)
		applyIfPresent(&features.Education.Activated, sub.Education)
	}

	applyQuota(&features.Members, info.Members)
	applyQuota(&features.Apps, info.Apps)
	applyQuota(&features.VectorSpace, info.VectorSpace)
	applyQuota(&features.DocumentsUploadQuota, info.DocumentsUploadQuota)
	applyQuota(&features.AnnotationQuotaLimit, info.AnnotationQuotaLimit)

	applyIfPresent(&features.DocsProcessing, info.DocsProcessing)
	applyIfPresent(&features.CanReplaceLogo, info.CanReplaceLogo)
	applyIfPresent(&features.ModelLoadBalancingEnabled, info.ModelLoadBalancingEnabled)
	if info.KnowledgeRateLimit != nil {
		applyIfPresent(&features.KnowledgeRateLimit, info.KnowledgeRateLimit.Limit)
	}
	return nil
}

func (s *Service) fulfillParamsFromEnterprise(ctx context.Context, features *SystemFeatureView) error {
	info, err := s.enterprise.GetInfo(ctx)
	if err != nil {
		return fmt.Errorf("get enterprise info: %w", err)
	}

	applyIfPresent(&features.SSOEnforcedForSignin, info.SSOEnforcedForSignin)
	applyIfPresent(&features.SSOEnforcedForSigninProtocol, info.SSOEnforcedForSigninProtocol)
	applyIfPresent(&features.SSOEnforcedForWeb, info.SSOEnforcedForWeb)
	applyIfPresent(&features.SSOEnforcedForWebProtocol, info.SSOEnforcedForWebProtocol)
	applyIfPresent(&features.EnableEmailCodeLogin, info.EnableEmailCodeLogin)
	applyIfPresent(&features.EnableEmailPasswordLogin, info.EnableEmailPasswordLogin)
	applyIfPresent(&features.IsAllowRegister, info.IsAllowRegister)
	applyIfPresent(&features.IsAllowCreateWorkspace, info.IsAllowCreateWorkspace)

	if license := info.License; license != nil {
		applyIfPresent(&features.License.Status, license.Status)
		applyIfPresent(&features.License.ExpiredAt, license.ExpiredAt)
	}
	return nil
}
