package cmd

import (
	"bytes"
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/achilleasa/lumen/output"
	"github.com/achilleasa/lumen/renderer"
	"github.com/achilleasa/lumen/scene/demo"
	"github.com/achilleasa/lumen/tracer"
	"github.com/achilleasa/lumen/tracer/cpu"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"
)

// Log render progress every progressStep percent.
const progressStep = 10.0

// Render a still frame of a demo scene.
func RenderFrame(ctx *cli.Context) error {
	if err := setupLogging(ctx); err != nil {
		return err
	}

	build, err := demo.Lookup(ctx.String("scene"))
	if err != nil {
		return err
	}

	width, height := ctx.Int("width"), ctx.Int("height")
	if width <= 0 || height <= 0 {
		return fmt.Errorf("invalid frame size %dx%d", width, height)
	}

	sc, cam := build(uint32(width), uint32(height))
	if fov := ctx.Float64("fov"); fov > 0 {
		cam.FOV = fov
	}
	cam.AA = uint32(ctx.Uint("aa"))
	cam.Branch = uint32(ctx.Uint("branch"))
	cam.Bounces = uint32(ctx.Uint("bounces"))
	logger.Infof("scene %q: %s", ctx.String("scene"), cam)

	opts := renderer.Options{
		Workers: ctx.Int("workers"),
		Seed:    ctx.Int64("seed"),
		Sampler: cpu.SamplerOptions{
			Converge:   ctx.Float64("converge"),
			MinSamples: uint32(ctx.Uint("min-samples")),
		},
		ProgressStep: progressStep,
	}

	// Validate output settings before spending time on the render
	outFile := ctx.String("out")
	if _, err = output.FormatFromPath(outFile); err != nil {
		return err
	}

	var uploader *output.Uploader
	if bucket := ctx.String("s3-bucket"); bucket != "" {
		uploader, err = output.NewUploader(output.S3Config{
			AccessKey: ctx.String("s3-access-key"),
			SecretKey: ctx.String("s3-secret-key"),
			Endpoint:  ctx.String("s3-endpoint"),
			Region:    ctx.String("s3-region"),
			Bucket:    bucket,
			ACL:       ctx.String("s3-acl"),
		})
		if err != nil {
			return err
		}
	}

	r, err := renderer.NewDefault(sc, cam, tracer.NewEvenScheduler(), opts)
	if err != nil {
		return err
	}
	defer r.Close()

	logger.Noticef("rendering %dx%d frame", cam.Width, cam.Height)
	frame, err := r.Render()
	if err != nil {
		return err
	}

	// Display stats
	displayFrameStats(r.Stats())

	img := output.ToImage(frame)
	if err = output.WriteFile(outFile, img); err != nil {
		return err
	}
	logger.Noticef("wrote frame to %s", outFile)

	if thumbW := ctx.Uint("thumbnail"); thumbW > 0 {
		thumbFile := thumbnailPath(outFile)
		if err = output.WriteFile(thumbFile, output.Thumbnail(img, thumbW)); err != nil {
			return err
		}
		logger.Noticef("wrote thumbnail to %s", thumbFile)
	}

	if uploader != nil {
		key := ctx.String("s3-key")
		if key == "" {
			key = filepath.Base(outFile)
		}
		if err = uploader.Upload(context.Background(), key, img); err != nil {
			return err
		}
	}

	return nil
}

// Get the thumbnail filename for an output file: frame.png -> frame_thumb.png.
func thumbnailPath(path string) string {
	ext := filepath.Ext(path)
	return strings.TrimSuffix(path, ext) + "_thumb" + ext
}

func displayFrameStats(stats renderer.FrameStats) {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Tracer", "Block start", "Block height", "% of frame", "Render time"})
	for _, stat := range stats.Tracers {
		table.Append([]string{
			stat.Id,
			fmt.Sprintf("%d", stat.BlockY),
			fmt.Sprintf("%d", stat.BlockH),
			fmt.Sprintf("%02.1f %%", stat.FramePercent),
			stat.RenderTime.String(),
		})
	}
	table.SetFooter([]string{"", "", "", "TOTAL", stats.RenderTime.String()})

	table.Render()
	logger.Noticef("frame statistics\n%s", buf.String())
}
