package aicontent

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/khoahotran/dynamic-profile/internal/application/service"
	"github.com/khoahotran/dynamic-profile/internal/domain/profile"
)

const dataURIPrefix = "data:image/png;base64,"

var errNoImageSupport = errors.New(MsgNoImageSupport)

func avatarPrompt(name, title string) string {
	return fmt.Sprintf("A professional, friendly headshot portrait for the profile of %s, a %s. Neutral background, soft studio lighting.", name, title)
}

func heroPrompt(title string) string {
	return fmt.Sprintf("A wide, modern abstract banner image for the portfolio website of a %s. No text.", title)
}

// GenerateImages creates an avatar and a hero image and writes both URLs in
// one update. If either image fails nothing is written.
func (b *Bridge) GenerateImages(ctx context.Context, n service.Notifier) bool {
	pi := b.store.Current().PersonalInfo
	name, title := strings.TrimSpace(pi.Name), strings.TrimSpace(pi.Title)
	if name == "" || title == "" {
		alert(n, MsgNeedNameTitle)
		return false
	}
	release, ok := b.begin(ActionImages, "", n)
	if !ok {
		return false
	}
	defer release()

	avatar, hero, err := b.generateImages(ctx, name, title)
	if err != nil {
		if errors.Is(err, errNoImageSupport) {
			alert(n, MsgNoImageSupport)
		} else {
			alert(n, failureMessage(err))
		}
		return false
	}

	ok = b.commit(func(prev *profile.Document) (*profile.Document, error) {
		prev.PersonalInfo.Avatar = avatar
		prev.PersonalInfo.HeroImage = hero
		return prev, nil
	}, n)
	if ok {
		notice(n, MsgImagesDone)
	}
	return ok
}

func (b *Bridge) generateImages(ctx context.Context, name, title string) (string, string, error) {
	ctx, span := tracer.Start(ctx, "GenerateImages")
	defer span.End()

	p, release, err := b.provider(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "provider unavailable")
		return "", "", err
	}
	defer release()
	span.SetAttributes(attribute.String("ai.provider", p.Name()))

	images, ok := p.(service.ImageGenerator)
	if !ok {
		span.SetStatus(codes.Error, "images unsupported")
		return "", "", errNoImageSupport
	}

	var avatar, hero string
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		url, err := b.image(gctx, images, "avatar", avatarPrompt(name, title))
		avatar = url
		return err
	})
	g.Go(func() error {
		url, err := b.image(gctx, images, "hero", heroPrompt(title))
		hero = url
		return err
	})
	if err := g.Wait(); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "generation failed")
		b.logger.Error("AI image generation failed", err, zap.String("provider", p.Name()))
		return "", "", err
	}
	return avatar, hero, nil
}

// image generates one picture and returns the URL to store for it: the
// hosted URL when an uploader is configured, otherwise a data URI.
func (b *Bridge) image(ctx context.Context, gen service.ImageGenerator, kind, prompt string) (string, error) {
	b64, err := gen.GenerateImage(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("%s image: %w", kind, err)
	}
	if b.uploader == nil {
		return dataURIPrefix + b64, nil
	}

	data, err := base64.StdEncoding.DecodeString(b64)
	if err != nil {
		return "", fmt.Errorf("%s image is not valid base64: %w", kind, err)
	}
	publicID := fmt.Sprintf("%s-%s", kind, uuid.NewString())
	url, err := b.uploader.Upload(ctx, bytes.NewReader(data), b.folder, publicID)
	if err != nil {
		return "", fmt.Errorf("failed to upload %s image: %w", kind, err)
	}
	b.logger.Info("Generated image uploaded", zap.String("kind", kind), zap.String("url", url))
	return url, nil
}
