package rest

import (
	"context"
	"net/url"

	pkgif "github.com/dep2p/go-ari/pkg/interfaces"
)

// ============================================================================
//                              Applications 服务
// ============================================================================

// applicationsService 应用资源服务
//
// 事件源形如 "channel:c1"、"bridge:b1"、"endpoint:PJSIP/alice"。
type applicationsService struct {
	resolver *Resolver
}

var _ pkgif.Applications = (*applicationsService)(nil)

// Subscribe 为应用订阅事件源
func (s *applicationsService) Subscribe(ctx context.Context, app, eventSource string) error {
	query := url.Values{"eventSource": {eventSource}}
	_, err := s.resolver.rest.Post(ctx, "/applications/"+url.PathEscape(app)+"/subscription", query)
	return err
}

// Unsubscribe 取消应用的事件源订阅
func (s *applicationsService) Unsubscribe(ctx context.Context, app, eventSource string) error {
	query := url.Values{"eventSource": {eventSource}}
	_, err := s.resolver.rest.Delete(ctx, "/applications/"+url.PathEscape(app)+"/subscription", query)
	return err
}
