package rod

// NodesJSON mirrors what collectStylesJS returns for a small page.
const NodesJSON = `[
	{"text": "", "markup": "<main class=\"dark\">", "tag": "main", "id": "", "classes": ["dark"],
	 "color": "rgb(0, 0, 0)", "background": "rgb(17, 17, 17)", "fontSize": "16px", "fontWeight": "400", "parent": -1},
	{"text": "Dim", "markup": "<section>Dim</section>", "tag": "section", "id": "", "classes": [],
	 "color": "rgb(68, 68, 68)", "background": "rgba(0, 0, 0, 0)", "fontSize": "16px", "fontWeight": "400", "parent": 0},
	{"text": "Read me", "markup": "<p id=\"lead\">Read me</p>", "tag": "p", "id": "lead", "classes": [],
	 "color": "rgb(0, 0, 0)", "background": "rgb(255, 255, 0)", "fontSize": "24px", "fontWeight": "700", "parent": 1}
]`
