package palette

// Brand systems below are approximate sRGB renderings of physical references:
// good enough to name a screen color, not for print matching.

// Pantone holds Colors of the Year plus common Pantone Matching System coated inks.
var Pantone = []Entry{
	{"PANTONE 15-5519 Turquoise", "#45b5aa"},
	{"PANTONE 14-0848 Mimosa", "#f0c05a"},
	{"PANTONE 18-3943 Blue Iris", "#5a5b9f"},
	{"PANTONE 19-1557 Chili Pepper", "#9b1b30"},
	{"PANTONE 13-1106 Sand Dollar", "#dfcfbe"},
	{"PANTONE 15-5217 Blue Turquoise", "#55b4b0"},
	{"PANTONE 17-1456 Tigerlily", "#e15d44"},
	{"PANTONE 14-4811 Aqua Sky", "#7fcdcd"},
	{"PANTONE 19-1664 True Red", "#bc243c"},
	{"PANTONE 17-2031 Fuchsia Rose", "#c3447a"},
	{"PANTONE 15-4020 Cerulean", "#98b4d4"},
	{"PANTONE 18-3224 Radiant Orchid", "#b163a3"},
	{"PANTONE 17-5641 Emerald", "#009473"},
	{"PANTONE 17-1463 Tangerine Tango", "#dd4124"},
	{"PANTONE 18-2120 Honeysuckle", "#d94f70"},
	{"PANTONE 18-1438 Marsala", "#955251"},
	{"PANTONE 13-1520 Rose Quartz", "#f7cac9"},
	{"PANTONE 15-3919 Serenity", "#92a8d1"},
	{"PANTONE 15-0343 Greenery", "#88b04b"},
	{"PANTONE 18-3838 Ultra Violet", "#5f4b8b"},
	{"PANTONE 16-1546 Living Coral", "#ff6f61"},
	{"PANTONE 19-4052 Classic Blue", "#0f4c81"},
	{"PANTONE 13-0647 Illuminating", "#f5df4d"},
	{"PANTONE 17-5104 Ultimate Gray", "#939597"},
	{"PANTONE 17-3938 Very Peri", "#6667ab"},
	{"PANTONE 18-1750 Viva Magenta", "#bb2649"},
	{"PANTONE 13-1023 Peach Fuzz", "#ffbe98"},
	{"PANTONE 17-1230 Mocha Mousse", "#a47864"},
	{"PANTONE 116 C", "#ffcd00"},
	{"PANTONE 021 C", "#fe5000"},
	{"PANTONE 485 C", "#da291c"},
	{"PANTONE 186 C", "#c8102e"},
	{"PANTONE 212 C", "#f04e98"},
	{"PANTONE 2685 C", "#330072"},
	{"PANTONE 286 C", "#0033a0"},
	{"PANTONE 300 C", "#005eb8"},
	{"PANTONE Process Blue C", "#0085ca"},
	{"PANTONE 3272 C", "#00a499"},
	{"PANTONE 354 C", "#00b140"},
	{"PANTONE 375 C", "#97d700"},
	{"PANTONE 7548 C", "#ffc600"},
	{"PANTONE 469 C", "#693f23"},
	{"PANTONE Cool Gray 7 C", "#97999b"},
	{"PANTONE Cool Gray 11 C", "#53565a"},
	{"PANTONE Black C", "#2d2926"},
}

// RAL holds a selection of the RAL Classic collection.
var RAL = []Entry{
	{"RAL 1000 Green beige", "#cdba88"},
	{"RAL 1013 Oyster white", "#e3d9c6"},
	{"RAL 1015 Light ivory", "#e6d2b5"},
	{"RAL 1018 Zinc yellow", "#faca30"},
	{"RAL 1023 Traffic yellow", "#f0ca00"},
	{"RAL 2004 Pure orange", "#e75b12"},
	{"RAL 3000 Flame red", "#a72920"},
	{"RAL 3005 Wine red", "#5e2028"},
	{"RAL 3020 Traffic red", "#bb1e10"},
	{"RAL 4005 Blue lilac", "#76689a"},
	{"RAL 5002 Ultramarine blue", "#00387b"},
	{"RAL 5010 Gentian blue", "#004f7c"},
	{"RAL 5012 Light blue", "#0089b6"},
	{"RAL 5015 Sky blue", "#007cb0"},
	{"RAL 5017 Traffic blue", "#005b8c"},
	{"RAL 6005 Moss green", "#0f4336"},
	{"RAL 6018 Yellow green", "#48a43f"},
	{"RAL 6029 Mint green", "#006f3d"},
	{"RAL 7016 Anthracite grey", "#383e42"},
	{"RAL 7035 Light grey", "#c5c7c4"},
	{"RAL 7040 Window grey", "#9da3a6"},
	{"RAL 8017 Chocolate brown", "#45302b"},
	{"RAL 9001 Cream", "#e9e0d2"},
	{"RAL 9003 Signal white", "#ecece7"},
	{"RAL 9005 Jet black", "#0e0e10"},
	{"RAL 9010 Pure white", "#f1ece1"},
	{"RAL 9016 Traffic white", "#f1f0ea"},
}

// NCS holds the gray scale and a few chromatic Natural Color System notations.
var NCS = []Entry{
	{"NCS S 0500-N", "#f0f0ec"},
	{"NCS S 1000-N", "#e3e3df"},
	{"NCS S 2000-N", "#c9c9c5"},
	{"NCS S 3000-N", "#afafab"},
	{"NCS S 4000-N", "#969692"},
	{"NCS S 5000-N", "#7e7e7a"},
	{"NCS S 6000-N", "#666663"},
	{"NCS S 7000-N", "#50504d"},
	{"NCS S 8000-N", "#393937"},
	{"NCS S 9000-N", "#1e1e1c"},
	{"NCS S 1080-Y", "#ffd200"},
	{"NCS S 1070-Y10R", "#fcc72a"},
	{"NCS S 1080-Y50R", "#f58220"},
	{"NCS S 1085-Y80R", "#e03c31"},
	{"NCS S 1580-R", "#c0143c"},
	{"NCS S 3050-R50B", "#7a4f8c"},
	{"NCS S 2065-R90B", "#1d5fa8"},
	{"NCS S 2060-B", "#0080b8"},
	{"NCS S 2050-B50G", "#00918c"},
	{"NCS S 2060-G", "#009a5a"},
	{"NCS S 2060-G50Y", "#7aa83c"},
	{"NCS S 3020-Y30R", "#b99f77"},
	{"NCS S 2010-Y90R", "#cbb5ab"},
	{"NCS S 4020-B", "#6b8ba0"},
}
