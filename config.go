package main

import (
	"bufio"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

type Config struct {
	SaveDirectory    string
	CanvasWidth      float64
	CanvasHeight     float64
	ExportScale      float64
	ThicknessPresets []float64
	Glyphs           []string
	GlyphSize        float64
	RotationStep     float64
	Seed             int64
	HasSeed          bool
}

func defaultConfig() *Config {
	return &Config{
		SaveDirectory:    "",
		CanvasWidth:      defaultCanvasWidth,
		CanvasHeight:     defaultCanvasHeight,
		ExportScale:      defaultExportScale,
		ThicknessPresets: append([]float64(nil), defaultSize...),
		Glyphs:           append([]string(nil), defaultPack...),
		GlyphSize:        defaultGlyphSize,
		RotationStep:     defaultRotationStep,
	}
}

func loadConfig() *Config {
	config := defaultConfig()

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return config
	}

	configPath := filepath.Join(homeDir, ".drawthingyrc")
	file, err := os.Open(configPath)
	if err != nil {
		return config
	}
	defer file.Close()

	config.parse(file, homeDir)
	return config
}

// parse applies key = value lines from r. Unknown keys and values that do
// not parse are ignored so a bad line never costs the defaults.
func (c *Config) parse(r io.Reader, homeDir string) {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		parts := strings.SplitN(line, "=", 2)
		if len(parts) != 2 {
			continue
		}

		key := strings.TrimSpace(parts[0])
		value := strings.TrimSpace(parts[1])

		switch strings.ToLower(key) {
		case "savedirectory", "save_directory", "savedir":
			if strings.HasPrefix(value, "~") {
				value = filepath.Join(homeDir, strings.TrimPrefix(value, "~"))
			}
			if !filepath.IsAbs(value) {
				if absPath, err := filepath.Abs(value); err == nil {
					value = absPath
				}
			}
			c.SaveDirectory = value
		case "canvaswidth", "canvas_width":
			setPositive(&c.CanvasWidth, value)
		case "canvasheight", "canvas_height":
			setPositive(&c.CanvasHeight, value)
		case "exportscale", "export_scale":
			setPositive(&c.ExportScale, value)
		case "glyphsize", "glyph_size":
			setPositive(&c.GlyphSize, value)
		case "rotationstep", "rotation_step":
			setPositive(&c.RotationStep, value)
		case "thicknesspresets", "thickness_presets", "thickness":
			var presets []float64
			for _, field := range strings.Split(value, ",") {
				v, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
				if err == nil && v >= minThickness {
					presets = append(presets, v)
				}
			}
			if len(presets) > 0 {
				c.ThicknessPresets = presets
			}
		case "glyphs", "stickers":
			var glyphs []string
			for _, field := range strings.Split(value, ",") {
				if g := strings.TrimSpace(field); g != "" {
					glyphs = append(glyphs, g)
				}
			}
			if len(glyphs) > 0 {
				c.Glyphs = glyphs
			}
		case "seed":
			if v, err := strconv.ParseInt(value, 10, 64); err == nil {
				c.Seed = v
				c.HasSeed = true
			}
		}
	}
}

func setPositive(dst *float64, value string) {
	v, err := strconv.ParseFloat(value, 64)
	if err != nil || v <= 0 {
		return
	}
	*dst = v
}

func (c *Config) GetSavePath(filename string) string {
	if c.SaveDirectory == "" {
		return filename
	}
	os.MkdirAll(c.SaveDirectory, 0755)
	return filepath.Join(c.SaveDirectory, filename)
}
