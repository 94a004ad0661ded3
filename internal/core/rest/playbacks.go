package rest

import (
	"context"
	"net/url"

	pkgif "github.com/dep2p/go-ari/pkg/interfaces"
)

// ============================================================================
//                              Playback 代理
// ============================================================================

// playbackProxy 播放代理
type playbackProxy struct {
	object
}

var _ pkgif.Playback = (*playbackProxy)(nil)

// Stop 停止播放
func (p *playbackProxy) Stop(ctx context.Context) error {
	_, err := p.rest.Delete(ctx, "/playbacks/"+url.PathEscape(p.id.Key), nil)
	return err
}

// ============================================================================
//                              Playbacks 服务
// ============================================================================

// playbacksService 播放资源服务
type playbacksService struct {
	resolver *Resolver
}

var _ pkgif.Playbacks = (*playbacksService)(nil)

// Get 获取指定播放的代理
func (s *playbacksService) Get(ctx context.Context, playbackID string) (pkgif.Playback, error) {
	_, err := s.resolver.rest.Get(ctx, "/playbacks/"+url.PathEscape(playbackID), nil)
	if err != nil {
		return nil, err
	}
	return s.resolver.Playback(playbackID), nil
}
