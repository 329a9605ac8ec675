package export

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"

	"github.com/san-kum/trigsim/internal/anim"
	"github.com/san-kum/trigsim/internal/logging"
	"github.com/san-kum/trigsim/internal/system"
	"github.com/san-kum/trigsim/internal/theme"
)

var ErrNoFFmpeg = errors.New("export: ffmpeg not found on PATH")

// VideoWriter pipes raw RGBA frames into ffmpeg.
type VideoWriter struct {
	r     *Rasterizer
	cmd   *exec.Cmd
	stdin io.WriteCloser
	count int
}

func NewVideoWriter(ctx context.Context, path string, th theme.Theme, width, height, fps int) (*VideoWriter, error) {
	if !system.FFmpegAvailable() {
		return nil, ErrNoFFmpeg
	}

	cmd := exec.CommandContext(ctx, "ffmpeg", ffmpegArgs(path, width, height, fps)...)
	stdin, err := cmd.StdinPipe()
	if err != nil {
		return nil, fmt.Errorf("stdin pipe error: %w", err)
	}
	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("ffmpeg start error: %w", err)
	}
	logging.Logger().Debug("ffmpeg started", "path", path, "size", fmt.Sprintf("%dx%d", width, height), "fps", fps)

	return &VideoWriter{
		r:     NewRasterizer(width, height, th),
		cmd:   cmd,
		stdin: stdin,
	}, nil
}

func ffmpegArgs(path string, width, height, fps int) []string {
	return []string{
		"-y",
		"-loglevel", "error",
		"-f", "rawvideo",
		"-pixel_format", "rgba",
		"-video_size", fmt.Sprintf("%dx%d", width, height),
		"-framerate", fmt.Sprintf("%d", fps),
		"-i", "-",
		"-pix_fmt", "yuv420p",
		"-c:v", "libx264",
		"-crf", "20",
		"-preset", "medium",
		path,
	}
}

func (w *VideoWriter) OnFrame(fi anim.FrameInfo) error {
	img := w.r.Render(fi.Shapes)
	if _, err := w.stdin.Write(img.Pix); err != nil {
		return fmt.Errorf("write raw error: %w", err)
	}
	w.count++
	return nil
}

func (w *VideoWriter) Frames() int { return w.count }

// Close ends the stream and waits for ffmpeg to finish the file.
func (w *VideoWriter) Close() error {
	w.stdin.Close()
	if err := w.cmd.Wait(); err != nil {
		return fmt.Errorf("ffmpeg wait error: %w", err)
	}
	return nil
}
