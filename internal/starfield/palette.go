package starfield

var (
	// darkBackground is the site's dark theme background, oklch(0.08 0 0).
	darkBackground = RGBA{R: 2, G: 2, B: 2, A: 1}

	white  = RGBA{R: 255, G: 255, B: 255, A: 1}
	indigo = RGBA{R: 99, G: 102, B: 241, A: 1}
	violet = RGBA{R: 147, G: 51, B: 234, A: 1}
	haze   = RGBA{R: 199, G: 210, B: 254, A: 1}
)

var lightStarPalette = []RGBA{
	{R: 99, G: 102, B: 241, A: 1},
	{R: 139, G: 92, B: 246, A: 1},
	{R: 56, G: 189, B: 248, A: 1},
	{R: 244, G: 114, B: 182, A: 1},
	{R: 251, G: 191, B: 36, A: 1},
}

var auroraPalette = []RGBA{
	{R: 167, G: 139, B: 250, A: 1},
	{R: 129, G: 140, B: 248, A: 1},
	{R: 125, G: 211, B: 252, A: 1},
	{R: 110, G: 231, B: 183, A: 1},
	{R: 249, G: 168, B: 212, A: 1},
	{R: 253, G: 186, B: 116, A: 1},
}
