package rest

import (
	"context"
	"net/url"

	pkgif "github.com/dep2p/go-ari/pkg/interfaces"
)

// ============================================================================
//                              Recording 代理
// ============================================================================

// recordingProxy 录音代理
//
// 录音以名称为稳定键，动作只针对活跃录音。
type recordingProxy struct {
	object
}

var _ pkgif.Recording = (*recordingProxy)(nil)

// Stop 停止录音并保存
func (p *recordingProxy) Stop(ctx context.Context) error {
	_, err := p.rest.Post(ctx, "/recordings/live/"+url.PathEscape(p.id.Key)+"/stop", nil)
	return err
}

// ============================================================================
//                              Recordings 服务
// ============================================================================

// recordingsService 录音资源服务
type recordingsService struct {
	resolver *Resolver
}

var _ pkgif.Recordings = (*recordingsService)(nil)

// Get 获取指定活跃录音的代理
func (s *recordingsService) Get(ctx context.Context, name string) (pkgif.Recording, error) {
	_, err := s.resolver.rest.Get(ctx, "/recordings/live/"+url.PathEscape(name), nil)
	if err != nil {
		return nil, err
	}
	return s.resolver.Recording(name), nil
}
