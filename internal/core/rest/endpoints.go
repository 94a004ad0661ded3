package rest

import (
	"context"
	"net/url"

	"github.com/tidwall/gjson"

	pkgif "github.com/dep2p/go-ari/pkg/interfaces"
)

// ============================================================================
//                              Endpoint 代理
// ============================================================================

// endpointProxy 端点代理（只读资源，无动作方法）
type endpointProxy struct {
	object
}

var _ pkgif.Endpoint = (*endpointProxy)(nil)

// ============================================================================
//                              Endpoints 服务
// ============================================================================

// endpointsService 端点资源服务
type endpointsService struct {
	resolver *Resolver
}

var _ pkgif.Endpoints = (*endpointsService)(nil)

// Get 获取指定端点的代理
//
// 端点稳定键为 "tech/resource"。
func (s *endpointsService) Get(ctx context.Context, tech, resource string) (pkgif.Endpoint, error) {
	_, err := s.resolver.rest.Get(ctx, "/endpoints/"+url.PathEscape(tech)+"/"+url.PathEscape(resource), nil)
	if err != nil {
		return nil, err
	}
	return s.resolver.Endpoint(tech + "/" + resource), nil
}

// List 列出已知端点
func (s *endpointsService) List(ctx context.Context) ([]pkgif.Endpoint, error) {
	body, err := s.resolver.rest.Get(ctx, "/endpoints", nil)
	if err != nil {
		return nil, err
	}

	var endpoints []pkgif.Endpoint
	for _, item := range gjson.ParseBytes(body).Array() {
		tech := item.Get("technology").Str
		resource := item.Get("resource").Str
		if tech == "" || resource == "" {
			continue
		}
		endpoints = append(endpoints, s.resolver.Endpoint(tech+"/"+resource))
	}
	return endpoints, nil
}
