package glyph

// Letters is the source domain of every table: A-Z followed by a-z.
var Letters = []rune("ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz")

// frakturGlyphs: MATHEMATICAL FRAKTUR. C, H, I, R and Z predate the block
// and live in Letterlike Symbols.
var frakturGlyphs = [52]rune{
	0x1D504, 0x1D505, 0x0212D, 0x1D507, 0x1D508, 0x1D509, 0x1D50A, // 𝔄𝔅ℭ𝔇𝔈𝔉𝔊
	0x0210C, 0x02111, 0x1D50D, 0x1D50E, 0x1D50F, 0x1D510, 0x1D511, // ℌℑ𝔍𝔎𝔏𝔐𝔑
	0x1D512, 0x1D513, 0x1D514, 0x0211C, 0x1D516, 0x1D517, 0x1D518, // 𝔒𝔓𝔔ℜ𝔖𝔗𝔘
	0x1D519, 0x1D51A, 0x1D51B, 0x1D51C, 0x02128,                   // 𝔙𝔚𝔛𝔜ℨ
	0x1D51E, 0x1D51F, 0x1D520, 0x1D521, 0x1D522, 0x1D523, 0x1D524, // 𝔞𝔟𝔠𝔡𝔢𝔣𝔤
	0x1D525, 0x1D526, 0x1D527, 0x1D528, 0x1D529, 0x1D52A, 0x1D52B, // 𝔥𝔦𝔧𝔨𝔩𝔪𝔫
	0x1D52C, 0x1D52D, 0x1D52E, 0x1D52F, 0x1D530, 0x1D531, 0x1D532, // 𝔬𝔭𝔮𝔯𝔰𝔱𝔲
	0x1D533, 0x1D534, 0x1D535, 0x1D536, 0x1D537,                   // 𝔳𝔴𝔵𝔶𝔷
}

// thickGlyphs: MATHEMATICAL BOLD FRAKTUR.
var thickGlyphs = [52]rune{
	0x1D56C, 0x1D56D, 0x1D56E, 0x1D56F, 0x1D570, 0x1D571, 0x1D572, // 𝕬𝕭𝕮𝕯𝕰𝕱𝕲
	0x1D573, 0x1D574, 0x1D575, 0x1D576, 0x1D577, 0x1D578, 0x1D579, // 𝕳𝕴𝕵𝕶𝕷𝕸𝕹
	0x1D57A, 0x1D57B, 0x1D57C, 0x1D57D, 0x1D57E, 0x1D57F, 0x1D580, // 𝕺𝕻𝕼𝕽𝕾𝕿𝖀
	0x1D581, 0x1D582, 0x1D583, 0x1D584, 0x1D585,                   // 𝖁𝖂𝖃𝖄𝖅
	0x1D586, 0x1D587, 0x1D588, 0x1D589, 0x1D58A, 0x1D58B, 0x1D58C, // 𝖆𝖇𝖈𝖉𝖊𝖋𝖌
	0x1D58D, 0x1D58E, 0x1D58F, 0x1D590, 0x1D591, 0x1D592, 0x1D593, // 𝖍𝖎𝖏𝖐𝖑𝖒𝖓
	0x1D594, 0x1D595, 0x1D596, 0x1D597, 0x1D598, 0x1D599, 0x1D59A, // 𝖔𝖕𝖖𝖗𝖘𝖙𝖚
	0x1D59B, 0x1D59C, 0x1D59D, 0x1D59E, 0x1D59F,                   // 𝖛𝖜𝖝𝖞𝖟
}

// boldGlyphs: MATHEMATICAL SANS-SERIF BOLD.
var boldGlyphs = [52]rune{
	0x1D5D4, 0x1D5D5, 0x1D5D6, 0x1D5D7, 0x1D5D8, 0x1D5D9, 0x1D5DA, // 𝗔𝗕𝗖𝗗𝗘𝗙𝗚
	0x1D5DB, 0x1D5DC, 0x1D5DD, 0x1D5DE, 0x1D5DF, 0x1D5E0, 0x1D5E1, // 𝗛𝗜𝗝𝗞𝗟𝗠𝗡
	0x1D5E2, 0x1D5E3, 0x1D5E4, 0x1D5E5, 0x1D5E6, 0x1D5E7, 0x1D5E8, // 𝗢𝗣𝗤𝗥𝗦𝗧𝗨
	0x1D5E9, 0x1D5EA, 0x1D5EB, 0x1D5EC, 0x1D5ED,                   // 𝗩𝗪𝗫𝗬𝗭
	0x1D5EE, 0x1D5EF, 0x1D5F0, 0x1D5F1, 0x1D5F2, 0x1D5F3, 0x1D5F4, // 𝗮𝗯𝗰𝗱𝗲𝗳𝗴
	0x1D5F5, 0x1D5F6, 0x1D5F7, 0x1D5F8, 0x1D5F9, 0x1D5FA, 0x1D5FB, // 𝗵𝗶𝗷𝗸𝗹𝗺𝗻
	0x1D5FC, 0x1D5FD, 0x1D5FE, 0x1D5FF, 0x1D600, 0x1D601, 0x1D602, // 𝗼𝗽𝗾𝗿𝘀𝘁𝘂
	0x1D603, 0x1D604, 0x1D605, 0x1D606, 0x1D607,                   // 𝘃𝘄𝘅𝘆𝘇
}
