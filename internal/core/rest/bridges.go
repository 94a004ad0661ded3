package rest

import (
	"context"
	"fmt"
	"net/url"

	"github.com/google/uuid"
	"github.com/tidwall/gjson"

	pkgif "github.com/dep2p/go-ari/pkg/interfaces"
)

// ============================================================================
//                              Bridge 代理
// ============================================================================

// bridgeProxy 桥接代理
type bridgeProxy struct {
	object
}

var _ pkgif.Bridge = (*bridgeProxy)(nil)

// AddChannel 将通道加入桥接
func (p *bridgeProxy) AddChannel(ctx context.Context, channelID string) error {
	query := url.Values{"channel": {channelID}}
	_, err := p.rest.Post(ctx, "/bridges/"+url.PathEscape(p.id.Key)+"/addChannel", query)
	return err
}

// RemoveChannel 将通道移出桥接
func (p *bridgeProxy) RemoveChannel(ctx context.Context, channelID string) error {
	query := url.Values{"channel": {channelID}}
	_, err := p.rest.Post(ctx, "/bridges/"+url.PathEscape(p.id.Key)+"/removeChannel", query)
	return err
}

// Destroy 销毁桥接
func (p *bridgeProxy) Destroy(ctx context.Context) error {
	_, err := p.rest.Delete(ctx, "/bridges/"+url.PathEscape(p.id.Key), nil)
	return err
}

// ============================================================================
//                              Bridges 服务
// ============================================================================

// bridgesService 桥接资源服务
type bridgesService struct {
	resolver *Resolver
}

var _ pkgif.Bridges = (*bridgesService)(nil)

// Get 获取指定桥接的代理
func (s *bridgesService) Get(ctx context.Context, bridgeID string) (pkgif.Bridge, error) {
	_, err := s.resolver.rest.Get(ctx, "/bridges/"+url.PathEscape(bridgeID), nil)
	if err != nil {
		return nil, err
	}
	return s.resolver.Bridge(bridgeID), nil
}

// List 列出当前桥接
func (s *bridgesService) List(ctx context.Context) ([]pkgif.Bridge, error) {
	body, err := s.resolver.rest.Get(ctx, "/bridges", nil)
	if err != nil {
		return nil, err
	}

	var bridges []pkgif.Bridge
	for _, item := range gjson.ParseBytes(body).Array() {
		if id := item.Get("id").Str; id != "" {
			bridges = append(bridges, s.resolver.Bridge(id))
		}
	}
	return bridges, nil
}

// Create 创建桥接
//
// 桥接标识由客户端生成，保证创建与后续订阅之间无竞态。
func (s *bridgesService) Create(ctx context.Context, bridgeType string) (pkgif.Bridge, error) {
	bridgeID := uuid.NewString()
	query := url.Values{
		"type":     {bridgeType},
		"bridgeId": {bridgeID},
	}
	body, err := s.resolver.rest.Post(ctx, "/bridges", query)
	if err != nil {
		return nil, err
	}

	if id := gjson.GetBytes(body, "id").Str; id != "" {
		bridgeID = id
	}
	if bridgeID == "" {
		return nil, fmt.Errorf("%w: create response has no bridge id", ErrRequestFailed)
	}
	return s.resolver.Bridge(bridgeID), nil
}
