package colormodel

var namedColors = map[string]RGB8{
	"black":   {0, 0, 0},
	"silver":  {192, 192, 192},
	"gray":    {128, 128, 128},
	"grey":    {128, 128, 128},
	"white":   {255, 255, 255},
	"maroon":  {128, 0, 0},
	"red":     {255, 0, 0},
	"purple":  {128, 0, 128},
	"fuchsia": {255, 0, 255},
	"magenta": {255, 0, 255},
	"green":   {0, 128, 0},
	"lime":    {0, 255, 0},
	"olive":   {128, 128, 0},
	"yellow":  {255, 255, 0},
	"navy":    {0, 0, 128},
	"blue":    {0, 0, 255},
	"teal":    {0, 128, 128},
	"aqua":    {0, 255, 255},
	"cyan":    {0, 255, 255},
	"orange":  {255, 165, 0},
	"pink":    {255, 192, 203},
	"brown":   {165, 42, 42},

	"darkgray":   {169, 169, 169},
	"darkgrey":   {169, 169, 169},
	"dimgray":    {105, 105, 105},
	"dimgrey":    {105, 105, 105},
	"lightgray":  {211, 211, 211},
	"lightgrey":  {211, 211, 211},
	"gainsboro":  {220, 220, 220},
	"whitesmoke": {245, 245, 245},
	"darkblue":   {0, 0, 139},
	"darkred":    {139, 0, 0},
	"darkgreen":  {0, 100, 0},
	"gold":       {255, 215, 0},
	"crimson":    {220, 20, 60},
	"indigo":     {75, 0, 130},
	"tomato":     {255, 99, 71},
	"coral":      {255, 127, 80},
	"salmon":     {250, 128, 114},
	"khaki":      {240, 230, 140},
	"beige":      {245, 245, 220},
	"ivory":      {255, 255, 240},
	"lavender":   {230, 230, 250},
	"skyblue":    {135, 206, 235},
	"steelblue":  {70, 130, 180},
	"slategray":  {112, 128, 144},
	"slategrey":  {112, 128, 144},
}
