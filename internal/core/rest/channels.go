package rest

import (
	"context"
	"fmt"
	"net/url"

	"github.com/tidwall/gjson"

	pkgif "github.com/dep2p/go-ari/pkg/interfaces"
	"github.com/dep2p/go-ari/pkg/types"
)

// ============================================================================
//                              Channel 代理
// ============================================================================

// channelProxy 通道代理
type channelProxy struct {
	object
}

var _ pkgif.Channel = (*channelProxy)(nil)

// Hangup 挂断通道
func (p *channelProxy) Hangup(ctx context.Context) error {
	_, err := p.rest.Delete(ctx, "/channels/"+url.PathEscape(p.id.Key), nil)
	return err
}

// Answer 应答通道
func (p *channelProxy) Answer(ctx context.Context) error {
	_, err := p.rest.Post(ctx, "/channels/"+url.PathEscape(p.id.Key)+"/answer", nil)
	return err
}

// Ring 向通道播放回铃音
func (p *channelProxy) Ring(ctx context.Context) error {
	_, err := p.rest.Post(ctx, "/channels/"+url.PathEscape(p.id.Key)+"/ring", nil)
	return err
}

// ContinueInDialplan 将通道交回拨号计划
func (p *channelProxy) ContinueInDialplan(ctx context.Context) error {
	_, err := p.rest.Post(ctx, "/channels/"+url.PathEscape(p.id.Key)+"/continue", nil)
	return err
}

// Play 在通道上播放媒体
//
// 播放标识由服务端分配，从响应中取出后物化播放代理。
func (p *channelProxy) Play(ctx context.Context, media string) (pkgif.Playback, error) {
	query := url.Values{"media": {media}}
	body, err := p.rest.Post(ctx, "/channels/"+url.PathEscape(p.id.Key)+"/play", query)
	if err != nil {
		return nil, err
	}

	playbackID := gjson.GetBytes(body, "id").Str
	if playbackID == "" {
		return nil, fmt.Errorf("%w: play response has no playback id", ErrRequestFailed)
	}
	return &playbackProxy{object{
		id:    types.ObjectID{Kind: types.KindPlayback, Key: playbackID},
		rest:  p.rest,
		index: p.index,
	}}, nil
}

// ============================================================================
//                              Channels 服务
// ============================================================================

// channelsService 通道资源服务
type channelsService struct {
	resolver *Resolver
}

var _ pkgif.Channels = (*channelsService)(nil)

// Get 获取指定通道的代理
func (s *channelsService) Get(ctx context.Context, channelID string) (pkgif.Channel, error) {
	_, err := s.resolver.rest.Get(ctx, "/channels/"+url.PathEscape(channelID), nil)
	if err != nil {
		return nil, err
	}
	return s.resolver.Channel(channelID), nil
}

// List 列出当前活跃通道
func (s *channelsService) List(ctx context.Context) ([]pkgif.Channel, error) {
	body, err := s.resolver.rest.Get(ctx, "/channels", nil)
	if err != nil {
		return nil, err
	}

	var channels []pkgif.Channel
	for _, item := range gjson.ParseBytes(body).Array() {
		if id := item.Get("id").Str; id != "" {
			channels = append(channels, s.resolver.Channel(id))
		}
	}
	return channels, nil
}
