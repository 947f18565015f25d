package _const

// QWERTY 标准键盘相邻键表
// 每个键映射到物理位置相邻的键，用于模拟真实的打错手滑
var QwertyNeighbors = map[rune][]rune{
	// 数字行
	'1': {'2', 'q'},
	'2': {'1', '3', 'q', 'w'},
	'3': {'2', '4', 'w', 'e'},
	'4': {'3', '5', 'e', 'r'},
	'5': {'4', '6', 'r', 't'},
	'6': {'5', '7', 't', 'y'},
	'7': {'6', '8', 'y', 'u'},
	'8': {'7', '9', 'u', 'i'},
	'9': {'8', '0', 'i', 'o'},
	'0': {'9', '-', 'o', 'p'},

	// 上排字母
	'q': {'1', '2', 'w', 'a'},
	'w': {'2', '3', 'q', 'e', 'a', 's'},
	'e': {'3', '4', 'w', 'r', 's', 'd'},
	'r': {'4', '5', 'e', 't', 'd', 'f'},
	't': {'5', '6', 'r', 'y', 'f', 'g'},
	'y': {'6', '7', 't', 'u', 'g', 'h'},
	'u': {'7', '8', 'y', 'i', 'h', 'j'},
	'i': {'8', '9', 'u', 'o', 'j', 'k'},
	'o': {'9', '0', 'i', 'p', 'k', 'l'},
	'p': {'0', '-', 'o', '[', 'l', ';'},

	// 中排字母
	'a': {'q', 'w', 's', 'z'},
	's': {'w', 'e', 'a', 'd', 'z', 'x'},
	'd': {'e', 'r', 's', 'f', 'x', 'c'},
	'f': {'r', 't', 'd', 'g', 'c', 'v'},
	'g': {'t', 'y', 'f', 'h', 'v', 'b'},
	'h': {'y', 'u', 'g', 'j', 'b', 'n'},
	'j': {'u', 'i', 'h', 'k', 'n', 'm'},
	'k': {'i', 'o', 'j', 'l', 'm', ','},
	'l': {'o', 'p', 'k', ';', ',', '.'},
	';': {'p', '[', 'l', '\'', '.', '/'},

	// 下排字母
	'z': {'a', 's', 'x'},
	'x': {'s', 'd', 'z', 'c'},
	'c': {'d', 'f', 'x', 'v'},
	'v': {'f', 'g', 'c', 'b'},
	'b': {'g', 'h', 'v', 'n'},
	'n': {'h', 'j', 'b', 'm'},
	'm': {'j', 'k', 'n', ','},
	',': {'k', 'l', 'm', '.'},
	'.': {'l', ';', ',', '/'},
	'/': {';', '\'', '.'},
}

// 句末标点
var SentenceEndings = map[rune]bool{
	'.': true,
	'!': true,
	'?': true,
}

// 词边界字符
var WordBoundaries = map[rune]bool{
	' ':  true,
	'\t': true,
	'\n': true,
}
