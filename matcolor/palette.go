// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package matcolor

// The Material Design 2014 palette.
var (
	Red = &Hue{
		Name: "red", Short: "r",
		S50:  rgb(0xFFEBEE),
		S100: rgb(0xFFCDD2),
		S200: rgb(0xEF9A9A),
		S300: rgb(0xE57373),
		S400: rgb(0xEF5350),
		S500: rgb(0xF44336),
		S600: rgb(0xE53935),
		S700: rgb(0xD32F2F),
		S800: rgb(0xC62828),
		S900: rgb(0xB71C1C),
		A100: rgb(0xFF8A80),
		A200: rgb(0xFF5252),
		A400: rgb(0xFF1744),
		A700: rgb(0xD50000),
	}
	Pink = &Hue{
		Name: "pink", Short: "p",
		S50:  rgb(0xFCE4EC),
		S100: rgb(0xF8BBD0),
		S200: rgb(0xF48FB1),
		S300: rgb(0xF06292),
		S400: rgb(0xEC407A),
		S500: rgb(0xE91E63),
		S600: rgb(0xD81B60),
		S700: rgb(0xC2185B),
		S800: rgb(0xAD1457),
		S900: rgb(0x880E4F),
		A100: rgb(0xFF80AB),
		A200: rgb(0xFF4081),
		A400: rgb(0xF50057),
		A700: rgb(0xC51162),
	}
	Purple = &Hue{
		Name: "purple", Short: "pu",
		S50:  rgb(0xF3E5F5),
		S100: rgb(0xE1BEE7),
		S200: rgb(0xCE93D8),
		S300: rgb(0xBA68C8),
		S400: rgb(0xAB47BC),
		S500: rgb(0x9C27B0),
		S600: rgb(0x8E24AA),
		S700: rgb(0x7B1FA2),
		S800: rgb(0x6A1B9A),
		S900: rgb(0x4A148C),
		A100: rgb(0xEA80FC),
		A200: rgb(0xE040FB),
		A400: rgb(0xD500F9),
		A700: rgb(0xAA00FF),
	}
	DeepPurple = &Hue{
		Name: "deeppurple", Short: "dp",
		S50:  rgb(0xEDE7F6),
		S100: rgb(0xD1C4E9),
		S200: rgb(0xB39DDB),
		S300: rgb(0x9575CD),
		S400: rgb(0x7E57C2),
		S500: rgb(0x673AB7),
		S600: rgb(0x5E35B1),
		S700: rgb(0x512DA8),
		S800: rgb(0x4527A0),
		S900: rgb(0x311B92),
		A100: rgb(0xB388FF),
		A200: rgb(0x7C4DFF),
		A400: rgb(0x651FFF),
		A700: rgb(0x6200EA),
	}
	Indigo = &Hue{
		Name: "indigo", Short: "i",
		S50:  rgb(0xE8EAF6),
		S100: rgb(0xC5CAE9),
		S200: rgb(0x9FA8DA),
		S300: rgb(0x7986CB),
		S400: rgb(0x5C6BC0),
		S500: rgb(0x3F51B5),
		S600: rgb(0x3949AB),
		S700: rgb(0x303F9F),
		S800: rgb(0x283593),
		S900: rgb(0x1A237E),
		A100: rgb(0x8C9EFF),
		A200: rgb(0x536DFE),
		A400: rgb(0x3D5AFE),
		A700: rgb(0x304FFE),
	}
	Blue = &Hue{
		Name: "blue", Short: "b",
		S50:  rgb(0xE3F2FD),
		S100: rgb(0xBBDEFB),
		S200: rgb(0x90CAF9),
		S300: rgb(0x64B5F6),
		S400: rgb(0x42A5F5),
		S500: rgb(0x2196F3),
		S600: rgb(0x1E88E5),
		S700: rgb(0x1976D2),
		S800: rgb(0x1565C0),
		S900: rgb(0x0D47A1),
		A100: rgb(0x82B1FF),
		A200: rgb(0x448AFF),
		A400: rgb(0x2979FF),
		A700: rgb(0x2962FF),
	}
	LightBlue = &Hue{
		Name: "lightblue", Short: "lb",
		S50:  rgb(0xE1F5FE),
		S100: rgb(0xB3E5FC),
		S200: rgb(0x81D4FA),
		S300: rgb(0x4FC3F7),
		S400: rgb(0x29B6F6),
		S500: rgb(0x03A9F4),
		S600: rgb(0x039BE5),
		S700: rgb(0x0288D1),
		S800: rgb(0x0277BD),
		S900: rgb(0x01579B),
		A100: rgb(0x80D8FF),
		A200: rgb(0x40C4FF),
		A400: rgb(0x00B0FF),
		A700: rgb(0x0091EA),
	}
	Cyan = &Hue{
		Name: "cyan", Short: "c",
		S50:  rgb(0xE0F7FA),
		S100: rgb(0xB2EBF2),
		S200: rgb(0x80DEEA),
		S300: rgb(0x4DD0E1),
		S400: rgb(0x26C6DA),
		S500: rgb(0x00BCD4),
		S600: rgb(0x00ACC1),
		S700: rgb(0x0097A7),
		S800: rgb(0x00838F),
		S900: rgb(0x006064),
		A100: rgb(0x84FFFF),
		A200: rgb(0x18FFFF),
		A400: rgb(0x00E5FF),
		A700: rgb(0x00B8D4),
	}
	Teal = &Hue{
		Name: "teal", Short: "t",
		S50:  rgb(0xE0F2F1),
		S100: rgb(0xB2DFDB),
		S200: rgb(0x80CBC4),
		S300: rgb(0x4DB6AC),
		S400: rgb(0x26A69A),
		S500: rgb(0x009688),
		S600: rgb(0x00897B),
		S700: rgb(0x00796B),
		S800: rgb(0x00695C),
		S900: rgb(0x004D40),
		A100: rgb(0xA7FFEB),
		A200: rgb(0x64FFDA),
		A400: rgb(0x1DE9B6),
		A700: rgb(0x00BFA5),
	}
	Green = &Hue{
		Name: "green", Short: "g",
		S50:  rgb(0xE8F5E9),
		S100: rgb(0xC8E6C9),
		S200: rgb(0xA5D6A7),
		S300: rgb(0x81C784),
		S400: rgb(0x66BB6A),
		S500: rgb(0x4CAF50),
		S600: rgb(0x43A047),
		S700: rgb(0x388E3C),
		S800: rgb(0x2E7D32),
		S900: rgb(0x1B5E20),
		A100: rgb(0xB9F6CA),
		A200: rgb(0x69F0AE),
		A400: rgb(0x00E676),
		A700: rgb(0x00C853),
	}
	LightGreen = &Hue{
		Name: "lightgreen", Short: "lg",
		S50:  rgb(0xF1F8E9),
		S100: rgb(0xDCEDC8),
		S200: rgb(0xC5E1A5),
		S300: rgb(0xAED581),
		S400: rgb(0x9CCC65),
		S500: rgb(0x8BC34A),
		S600: rgb(0x7CB342),
		S700: rgb(0x689F38),
		S800: rgb(0x558B2F),
		S900: rgb(0x33691E),
		A100: rgb(0xCCFF90),
		A200: rgb(0xB2FF59),
		A400: rgb(0x76FF03),
		A700: rgb(0x64DD17),
	}
	Lime = &Hue{
		Name: "lime", Short: "l",
		S50:  rgb(0xF9FBE7),
		S100: rgb(0xF0F4C3),
		S200: rgb(0xE6EE9C),
		S300: rgb(0xDCE775),
		S400: rgb(0xD4E157),
		S500: rgb(0xCDDC39),
		S600: rgb(0xC0CA33),
		S700: rgb(0xAFB42B),
		S800: rgb(0x9E9D24),
		S900: rgb(0x827717),
		A100: rgb(0xF4FF81),
		A200: rgb(0xEEFF41),
		A400: rgb(0xC6FF00),
		A700: rgb(0xAEEA00),
	}
	Yellow = &Hue{
		Name: "yellow", Short: "y",
		S50:  rgb(0xFFFDE7),
		S100: rgb(0xFFF9C4),
		S200: rgb(0xFFF59D),
		S300: rgb(0xFFF176),
		S400: rgb(0xFFEE58),
		S500: rgb(0xFFEB3B),
		S600: rgb(0xFDD835),
		S700: rgb(0xFBC02D),
		S800: rgb(0xF9A825),
		S900: rgb(0xF57F17),
		A100: rgb(0xFFFF8D),
		A200: rgb(0xFFFF00),
		A400: rgb(0xFFEA00),
		A700: rgb(0xFFD600),
	}
	Amber = &Hue{
		Name: "amber", Short: "a",
		S50:  rgb(0xFFF8E1),
		S100: rgb(0xFFECB3),
		S200: rgb(0xFFE082),
		S300: rgb(0xFFD54F),
		S400: rgb(0xFFCA28),
		S500: rgb(0xFFC107),
		S600: rgb(0xFFB300),
		S700: rgb(0xFFA000),
		S800: rgb(0xFF8F00),
		S900: rgb(0xFF6F00),
		A100: rgb(0xFFE57F),
		A200: rgb(0xFFD740),
		A400: rgb(0xFFC400),
		A700: rgb(0xFFAB00),
	}
	Orange = &Hue{
		Name: "orange", Short: "o",
		S50:  rgb(0xFFF3E0),
		S100: rgb(0xFFE0B2),
		S200: rgb(0xFFCC80),
		S300: rgb(0xFFB74D),
		S400: rgb(0xFFA726),
		S500: rgb(0xFF9800),
		S600: rgb(0xFB8C00),
		S700: rgb(0xF57C00),
		S800: rgb(0xEF6C00),
		S900: rgb(0xE65100),
		A100: rgb(0xFFD180),
		A200: rgb(0xFFAB40),
		A400: rgb(0xFF9100),
		A700: rgb(0xFF6D00),
	}
	DeepOrange = &Hue{
		Name: "deeporange", Short: "do",
		S50:  rgb(0xFBE9E7),
		S100: rgb(0xFFCCBC),
		S200: rgb(0xFFAB91),
		S300: rgb(0xFF8A65),
		S400: rgb(0xFF7043),
		S500: rgb(0xFF5722),
		S600: rgb(0xF4511E),
		S700: rgb(0xE64A19),
		S800: rgb(0xD84315),
		S900: rgb(0xBF360C),
		A100: rgb(0xFF9E80),
		A200: rgb(0xFF6E40),
		A400: rgb(0xFF3D00),
		A700: rgb(0xDD2C00),
	}
	Brown = &Hue{
		Name: "brown", Short: "br",
		S50:  rgb(0xEFEBE9),
		S100: rgb(0xD7CCC8),
		S200: rgb(0xBCAAA4),
		S300: rgb(0xA1887F),
		S400: rgb(0x8D6E63),
		S500: rgb(0x795548),
		S600: rgb(0x6D4C41),
		S700: rgb(0x5D4037),
		S800: rgb(0x4E342E),
		S900: rgb(0x3E2723),
	}
	Gray = &Hue{
		Name: "gray", Short: "gr",
		S50:  rgb(0xFAFAFA),
		S100: rgb(0xF5F5F5),
		S200: rgb(0xEEEEEE),
		S300: rgb(0xE0E0E0),
		S400: rgb(0xBDBDBD),
		S500: rgb(0x9E9E9E),
		S600: rgb(0x757575),
		S700: rgb(0x616161),
		S800: rgb(0x424242),
		S900: rgb(0x212121),
	}
	BlueGray = &Hue{
		Name: "bluegray", Short: "bg",
		S50:  rgb(0xECEFF1),
		S100: rgb(0xCFD8DC),
		S200: rgb(0xB0BEC5),
		S300: rgb(0x90A4AE),
		S400: rgb(0x78909C),
		S500: rgb(0x607D8B),
		S600: rgb(0x546E7A),
		S700: rgb(0x455A64),
		S800: rgb(0x37474F),
		S900: rgb(0x263238),
	}
)

// Hues lists every hue in palette order.
var Hues = []*Hue{
	Red,
	Pink,
	Purple,
	DeepPurple,
	Indigo,
	Blue,
	LightBlue,
	Cyan,
	Teal,
	Green,
	LightGreen,
	Lime,
	Yellow,
	Amber,
	Orange,
	DeepOrange,
	Brown,
	Gray,
	BlueGray,
}
