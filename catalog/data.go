package catalog

// categories is the authored catalog. Order within each level is display order.
var categories = []Category{
	{
		Name: "Faces",
		Subcategories: []Subcategory{
			{
				Name: "Basic Faces",
				Glyphs: []string{
					"😀", "😃", "😄", "😁", "😆", "😅", "🤣", "😂", "🙂", "🙃",
					"😉", "😊", "😇", "🥰", "😍", "🤩", "😘", "😗", "😚", "😙",
					"😋", "😛", "😜", "🤪", "😝", "🤑", "🤗", "🤭", "🤫", "🤔",
					"🤐", "🤨", "😐", "😑", "😶", "😏", "😒", "🙄", "😬", "🤥",
					"😔", "😪", "🤤", "😴", "😷", "🤒", "🤕", "🤢", "🤮", "🤧",
					"🥵", "🥶", "🥴", "😵", "🤯", "🤠", "🥳", "😎", "🤓", "🧐",
					"😕", "😟", "🙁", "☹️", "😮", "😯", "😲", "😳", "🥺", "😦",
					"😧", "😨", "😰", "😥", "😢", "😭", "😱", "😖", "😣", "😞",
				},
			},
			{
				Name: "Cat Faces",
				Glyphs: []string{
					"😸", "😹", "😺", "😻", "😼", "😽", "🙀", "😿", "😾",
				},
			},
			{
				Name: "Monkey Faces",
				Glyphs: []string{
					"🙈", "🙉", "🙊", "🐵",
				},
			},
			{
				Name: "Creature Faces",
				Glyphs: []string{
					"👹", "👺", "🤡", "💩", "👻", "💀", "☠️", "👽", "👾", "🤖",
					"🎃", "😈", "👿", "🔥", "💫", "⭐", "🌟", "✨", "💥", "💢",
					"👹", "👺", "🤡", "🦄", "🐲", "🐉", "🦖", "🦕",
				},
			},
		},
	},
	{
		Name: "People",
		Subcategories: []Subcategory{
			{
				Name: "Basic People",
				Glyphs: []string{
					"👶", "🧒", "👦", "👧", "🧑", "👱", "👨", "🧔", "👨‍🦰", "👨‍🦱",
					"👨‍🦳", "👨‍🦲", "👩", "👩‍🦰", "👩‍🦱", "👩‍🦳", "👩‍🦲", "👱‍♀️", "👱‍♂️", "🧓",
					"👴", "👵",
				},
			},
			{
				Name: "Role and Activities",
				Glyphs: []string{
					"👨‍⚕️", "👩‍⚕️", "👨‍🌾", "👩‍🌾", "👨‍🍳", "👩‍🍳", "👨‍🎓", "👩‍🎓", "👨‍🎤", "👩‍🎤",
					"👨‍🏫", "👩‍🏫", "👨‍🏭", "👩‍🏭", "👨‍💻", "👩‍💻", "👨‍💼", "👩‍💼", "👨‍🔧", "👩‍🔧",
					"👨‍🔬", "👩‍🔬", "👨‍🎨", "👩‍🎨", "👨‍🚒", "👩‍🚒", "👨‍✈️", "👩‍✈️", "👨‍🚀", "👩‍🚀",
					"👨‍⚖️", "👩‍⚖️", "👰", "🤵", "👸", "🤴", "🦸", "🦹", "🧙", "🧚",
					"🧛", "🧜", "🧝", "🧞", "🧟", "💆", "💇", "🚶", "🏃", "💃",
				},
			},
			{
				Name: "Body Gestures",
				Glyphs: []string{
					"🙍", "🙍‍♂️", "🙍‍♀️", "🙎", "🙎‍♂️", "🙎‍♀️", "🙅", "🙅‍♂️", "🙅‍♀️", "🙆",
					"🙆‍♂️", "🙆‍♀️", "💁", "💁‍♂️", "💁‍♀️", "🙋", "🙋‍♂️", "🙋‍♀️", "🧏", "🧏‍♂️",
					"🧏‍♀️", "🙇", "🙇‍♂️", "🙇‍♀️", "🤦", "🤦‍♂️", "🤦‍♀️", "🤷", "🤷‍♂️", "🤷‍♀️",
				},
			},
			{
				Name: "Comic Style",
				Glyphs: []string{
					"🦹", "🦸", "🧙", "🧚", "🧛", "🧜", "🧝", "🧞", "🧟", "🎅",
					"🤶", "🧙‍♀️", "🧙‍♂️", "🧚‍♀️", "🧚‍♂️", "🧛‍♀️", "🧛‍♂️", "🧜‍♀️", "🧜‍♂️", "🧝‍♀️",
				},
			},
			{
				Name: "Body and Fashion",
				Glyphs: []string{
					"👗", "👚", "👕", "👖", "👔", "🧥", "🥼", "🦺", "👘", "🥻",
					"🩱", "🩲", "🩳", "👙", "👠", "👡", "👢", "👞", "👟", "🥾",
					"🥿", "👒", "🎩", "🎓", "👑", "⛑️", "📿", "💄", "💍", "💎",
				},
			},
			{
				Name: "Hand Gesture",
				Glyphs: []string{
					"👋", "🤚", "🖐️", "✋", "🖖", "👌", "🤌", "🤏", "✌️", "🤞",
					"🤟", "🤘", "🤙", "👈", "👉", "👆", "🖕", "👇", "☝️", "👍",
					"👎", "👊", "✊", "🤛", "🤜", "👏", "🙌", "👐", "🤲", "🤝",
				},
			},
			{
				Name: "Love",
				Glyphs: []string{
					"💋", "💌", "💘", "💝", "💖", "💗", "💓", "💞", "💕", "💟",
					"❣️", "💔", "❤️‍🔥", "❤️‍🩹", "❤️", "🧡", "💛", "💚", "💙", "💜",
					"🤎", "🖤", "🤍", "💯", "💢", "💥", "💫", "💦", "💨", "🕳️",
				},
			},
			{
				Name: "Couple and Family",
				Glyphs: []string{
					"👫", "👬", "👭", "👪", "👨‍👩‍👧", "👨‍👩‍👧‍👦", "👨‍👩‍👦‍👦", "👨‍👩‍👧‍👧", "👨‍👨‍👦", "👨‍👨‍👧",
					"👨‍👨‍👧‍👦", "👨‍👨‍👦‍👦", "👨‍👨‍👧‍👧", "👩‍👩‍👦", "👩‍👩‍👧", "👩‍👩‍👧‍👦", "👩‍👩‍👦‍👦", "👩‍👩‍👧‍👧", "👨‍👦", "👨‍👦‍👦",
					"👨‍👧", "👨‍👧‍👦", "👨‍👧‍👧", "👩‍👦", "👩‍👦‍👦", "👩‍👧", "👩‍👧‍👦", "👩‍👧‍👧",
				},
			},
		},
	},
	{
		Name: "Leisure",
		Subcategories: []Subcategory{
			{
				Name: "Celebration",
				Glyphs: []string{
					"🎉", "🎊", "🥳", "🎈", "🎁", "🎀", "🎂", "🍰", "🧁", "🍾",
					"🥂", "🍻", "🎆", "🎇", "✨", "🎃", "🎄", "🎋", "🎍", "🎑",
				},
			},
			{
				Name: "Entertainment",
				Glyphs: []string{
					"🎪", "🎭", "🩰", "🎨", "🎬", "🎤", "🎧", "🎼", "🎹", "🥁",
					"🎷", "🎺", "🎸", "🪕", "🎻", "🎲", "♠️", "♥️", "♦️", "♣️",
					"🃏", "🀄", "🎯", "🎳", "🎮", "🕹️", "🎰", "🧩",
				},
			},
			{
				Name: "Sport",
				Glyphs: []string{
					"⚽", "🏀", "🏈", "⚾", "🥎", "🎾", "🏐", "🏉", "🥏", "🎱",
					"🪀", "🏓", "🏸", "🏒", "🏑", "🥍", "🏏", "🪃", "🥅", "⛳",
					"🏹", "🎣", "🤿", "🥊", "🥋", "🎽", "🛹", "🛷", "⛸️", "🥌",
				},
			},
			{
				Name: "Music",
				Glyphs: []string{
					"🎵", "🎶", "🎼", "🎹", "🥁", "🎷", "🎺", "🎸", "🪕", "🎻",
					"🪗", "🎤", "🎧", "📻", "📀", "💿", "💾", "💽", "🎙️", "🎚️",
				},
			},
			{
				Name: "Cards and Chess",
				Glyphs: []string{
					"♠️", "♥️", "♦️", "♣️", "🃏", "🀄", "♟️", "♜", "♝", "♛",
					"♚", "♞", "♜", "♟", "♙", "♖", "♕", "♔", "♗", "♘",
				},
			},
			{
				Name: "Japanese Chess",
				Glyphs: []string{
					"🀀", "🀁", "🀂", "🀃", "🀄", "🀅", "🀆", "🀇", "🀈", "🀉",
					"🀊", "🀋", "🀌", "🀍", "🀎", "🀏",
				},
			},
			{
				Name: "Draughts and Checkers",
				Glyphs: []string{
					"⚫", "⚪", "🔴", "🟤", "🟡", "🟢", "🔵", "🟣", "🟠", "⭕",
				},
			},
			{
				Name: "Go Markers",
				Glyphs: []string{
					"⚫", "⚪", "🔘", "⭕", "🚫", "💯", "💮", "🔴", "🔵", "🟢",
				},
			},
		},
	},
	{
		Name: "Nature (Animals)",
		Subcategories: []Subcategory{
			{
				Name: "Animals",
				Glyphs: []string{
					"🐶", "🐱", "🐭", "🐹", "🐰", "🦊", "🐻", "🐼", "🐨", "🐯",
					"🦁", "🐮", "🐷", "🐽", "🐸", "🐵", "🐒", "🐔", "🐧", "🐦",
					"🐤", "🐣", "🐥", "🦆", "🦅", "🦉", "🦇", "🐺", "🐗", "🐴",
					"🦄", "🐝", "🐛", "🦋", "🐌", "🐞", "🐜", "🦟", "🦗", "🕷️",
					"🦂", "🐢", "🐍", "🦎", "🦖", "🦕", "🐙", "🦑", "🦐", "🦞",
					"🦀", "🐡", "🐠", "🐟", "🐬", "🐳", "🐋", "🦈", "🐊", "🐅",
					"🐆", "🦓", "🦍", "🦧", "🐘", "🦛", "🦏", "🐪", "🐫", "🦒",
				},
			},
			{
				Name: "Ninja Cat",
				Glyphs: []string{
					"🥷", "🐱‍👤", "🐱‍🏍", "🐱‍💻", "🐱‍🐉", "🐱‍👓", "🐱‍🚀",
				},
			},
			{
				Name: "Environment/Weather",
				Glyphs: []string{
					"🌞", "🌝", "🌛", "🌜", "🌚", "🌕", "🌖", "🌗", "🌘", "🌑",
					"🌒", "🌓", "🌔", "🌙", "🌎", "🌍", "🌏", "💫", "⭐", "🌟",
					"✨", "⚡", "☄️", "💥", "🔥", "🌪️", "🌈", "☀️", "🌤️", "⛅",
					"🌦️", "🌧️", "⛈️", "🌩️", "🌨️", "❄️", "☃️", "⛄", "🌬️", "💨",
					"🌊", "💧", "💦", "🌿", "🍃", "🌱", "🌳", "🌲", "🎋", "🎍",
				},
			},
			{
				Name: "Time",
				Glyphs: []string{
					"🕐", "🕑", "🕒", "🕓", "🕔", "🕕", "🕖", "🕗", "🕘", "🕙",
					"🕚", "🕛", "🕜", "🕝", "🕞", "🕟", "🕠", "🕡", "🕢", "🕣",
					"🕤", "🕥", "🕦", "🕧", "⏰", "⏲️", "⏱️", "⏳", "⌛", "📅",
					"📆", "🗓️", "📋", "📌", "📍", "📎", "🔗", "📏", "📐",
				},
			},
		},
	},
	{
		Name: "Food/Drinks",
		Subcategories: []Subcategory{
			{
				Name: "Fruit and Vegetables",
				Glyphs: []string{
					"🍎", "🍊", "🍋", "🍌", "🍉", "🍇", "🍓", "🫐", "🍈", "🍒",
					"🍑", "🥭", "🍍", "🥥", "🥝", "🍅", "🍆", "🥑", "🥦", "🥬",
					"🥒", "🌶️", "🫑", "🌽", "🥕", "🫒", "🧄", "🧅", "🥔", "🍠",
					"🥐", "🍞", "🥖", "🥨", "🧀", "🥚", "🍳", "🧈", "🥞", "🧇",
				},
			},
			{
				Name: "Drinks",
				Glyphs: []string{
					"☕", "🍵", "🧃", "🥤", "🍶", "🍺", "🍻", "🥂", "🍷", "🥃",
					"🍸", "🍹", "🧉", "🍾", "🧊", "🥛", "🍼", "🫖", "🧋", "🥤",
				},
			},
			{
				Name: "Dishware",
				Glyphs: []string{
					"🍽️", "🍴", "🥄", "🔪", "🥢", "🍷", "🍸", "🍹", "🍺", "🍻",
					"🥂", "🥃", "🫖", "☕", "🍵", "🧃", "🥛", "🧊", "🥤", "🍾",
				},
			},
		},
	},
	{
		Name: "City",
		Subcategories: []Subcategory{
			{
				Name: "Living in a City",
				Glyphs: []string{
					"🏠", "🏡", "🏘️", "🏚️", "🏗️", "🏭", "🏢", "🏬", "🏣", "🏤",
					"🏥", "🏦", "🏨", "🏪", "🏫", "🏩", "💒", "🏛️", "⛪", "🕌",
					"🛕", "🕍", "⛩️", "🕋", "⛲", "⛱️", "🏖️", "🏝️",
				},
			},
			{
				Name: "Locations and Landmarks",
				Glyphs: []string{
					"🗼", "🗽", "⛪", "🕌", "🛕", "🕍", "⛩️", "🕋", "⛲", "⛱️",
					"🏖️", "🏝️", "🏜️", "🌋", "⛰️", "🏔️", "🗻", "🏕️", "⛺", "🏞️",
					"🛣️", "🛤️", "🌉", "🌁", "🏙️", "🌆", "🌇", "🌃", "🌌", "🎡",
				},
			},
			{
				Name: "Transports",
				Glyphs: []string{
					"🚗", "🚕", "🚙", "🚌", "🚎", "🏎️", "🚓", "🚑", "🚒", "🚐",
					"🚚", "🚛", "🚜", "🏍️", "🛵", "🚲", "🛴", "🚁", "✈️", "🛩️",
					"🚀", "🛸", "🚢", "⛵", "🚤", "⛴️", "🚆", "🚄", "🚅", "🚈",
					"🚝", "🚞", "🚋", "🚃", "🚇", "🚊", "🚉", "🚂", "🚆", "🚄",
				},
			},
			{
				Name: "Sights",
				Glyphs: []string{
					"🎪", "🎡", "🎢", "🎠", "⛲", "🏖️", "🏝️", "🏔️", "🗻", "🏕️",
					"🏞️", "🌉", "🌁", "🏙️", "🌆", "🌇", "🌃", "🌌", "🎆", "🎇",
				},
			},
		},
	},
	{
		Name: "Office",
		Subcategories: []Subcategory{
			{
				Name: "Money",
				Glyphs: []string{
					"💰", "💴", "💵", "💶", "💷", "💸", "💳", "🧾", "💎", "⚖️",
					"🏧", "💹", "💱", "💲", "🪙", "💰", "🪪", "🏷️", "📊", "📈",
				},
			},
			{
				Name: "Work",
				Glyphs: []string{
					"💼", "👔", "📊", "📈", "📉", "📋", "📌", "📍", "📎", "🖇️",
					"📏", "📐", "✂️", "🗃️", "🗄️", "🗑️", "🔒", "🔓", "🔏", "🔐",
					"🔑", "🗝️", "🔨", "🪓", "⛏️", "⚒️", "🛠️", "⚙️", "🔧", "🔩",
				},
			},
			{
				Name: "Communications",
				Glyphs: []string{
					"📝", "✏️", "🖊️", "🖋️", "✒️", "🖌️", "🖍️", "📚", "📖", "📗",
					"📘", "📙", "📓", "📔", "📒", "📃", "📄", "📰", "🗞️", "📑",
					"🔖", "🏷️", "📞", "☎️", "📟", "📠", "📧", "📨", "📩", "📪",
				},
			},
			{
				Name: "Grading",
				Glyphs: []string{
					"💯", "💮", "🏆", "🥇", "🥈", "🥉", "🏅", "🎖️", "🏆", "📜",
					"🎓", "📚", "📖", "📝", "✏️", "📐", "📏", "🖊️", "🖋️", "✒️",
				},
			},
		},
	},
	{
		Name: "IT/UI",
		Subcategories: []Subcategory{
			{
				Name: "Devices",
				Glyphs: []string{
					"💻", "🖥️", "🖨️", "⌨️", "🖱️", "🖲️", "💽", "💾", "💿", "📀",
					"🧮", "📱", "📞", "☎️", "📟", "📠", "📺", "📻", "🎙️", "🎚️",
					"🎛️", "🧭", "⏱️", "⏲️", "⏰", "🕰️", "⌛", "⏳", "📡", "🔋",
				},
			},
			{
				Name: "User Interface",
				Glyphs: []string{
					"🔄", "🔃", "🔁", "🔂", "▶️", "⏸️", "⏯️", "⏹️", "⏺️", "⏭️",
					"⏮️", "⏪", "⏩", "⏫", "⏬", "◀️", "🔼", "🔽", "➡️", "⬅️",
					"⬆️", "⬇️", "↗️", "↘️", "↙️", "↖️", "↕️", "↔️", "↪️", "↩️",
					"⤴️", "⤵️", "🔀", "🔁", "🔂", "🔄", "🔃", "🎛️", "🎚️", "📶",
				},
			},
			{
				Name: "Informational Signs",
				Glyphs: []string{
					"⚠️", "🚸", "⛔", "🚫", "🚳", "🚭", "🚯", "🚱", "🚷", "📵",
					"🔞", "☢️", "☣️", "⬆️", "↗️", "➡️", "↘️", "⬇️", "↙️", "⬅️",
					"↖️", "↕️", "↔️", "↪️", "↩️", "⤴️", "⤵️", "🔃", "🔄", "🔙",
					"🔚", "🔛", "🔜", "🔝", "🛂", "🛃", "🛄", "🛅", "⚡", "🔌",
				},
			},
		},
	},
	{
		Name: "MISC/Squares/Circles",
		Subcategories: []Subcategory{
			{
				Name: "All Geometric Emojis",
				Glyphs: []string{
					"⚫", "⚪", "🔴", "🔵", "🟠", "🟡", "🟢", "🟣", "🟤", "🔲",
					"🔳", "⬛", "⬜", "◼️", "◻️", "◾", "◽", "▪️", "▫️", "🔶",
					"🔷", "🔸", "🔹", "🔺", "🔻", "💠", "🔘", "🔲", "🔳", "⭐",
					"🌟", "✨", "⚡", "💥", "💫", "💦", "💨", "🕳️", "💣", "💢",
					"💤", "💨", "💫", "💥", "💢", "💦", "💤", "🗨️", "💭", "🗯️",
				},
			},
			{
				Name: "Religious Symbols",
				Glyphs: []string{
					"☪️", "✡️", "🔯", "🕉️", "☸️", "✝️", "☦️", "☪️", "☮️", "🕎",
					"🔱", "🆔", "⚛️", "🉐", "㊙️", "㊗️", "🈴", "🈵", "🈹", "🈲",
					"🅰️", "🅱️", "🆎", "🆑", "🅾️", "🆘", "❌", "⭕", "🛑", "⛔",
				},
			},
		},
	},
}
