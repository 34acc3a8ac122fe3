package font

// ascii is the built-in proportional font, in lookup order. Most glyphs end
// with a blank column so that abutting glyphs stay readable.
var ascii = []struct {
	r    rune
	cols []byte
}{
	{' ', []byte{0x00, 0x00, 0x00, 0x00}},
	{'!', []byte{0x5f, 0x00}},
	{'"', []byte{0x03, 0x00, 0x03, 0x00}},
	{'#', []byte{0x14, 0x3e, 0x14, 0x3e, 0x14, 0x00}},
	{'$', []byte{0x24, 0x6a, 0x2b, 0x12, 0x00}},
	{'%', []byte{0x63, 0x13, 0x08, 0x64, 0x63, 0x00}},
	{'&', []byte{0x36, 0x49, 0x56, 0x20, 0x50, 0x00}},
	{'\'', []byte{0x03, 0x00}},
	{'(', []byte{0x1c, 0x22, 0x41, 0x00}},
	{')', []byte{0x41, 0x22, 0x1c, 0x00}},
	{'*', []byte{0x28, 0x18, 0x0e, 0x18, 0x28, 0x00}},
	{'+', []byte{0x08, 0x08, 0x3e, 0x08, 0x08, 0x00}},
	{',', []byte{0xb0, 0x70, 0x00}},
	{'-', []byte{0x08, 0x08, 0x08}},
	{'.', []byte{0x60, 0x60, 0x00}},
	{'/', []byte{0x60, 0x18, 0x06, 0x01, 0x00}},
	{'0', []byte{0x3e, 0x41, 0x41, 0x3e, 0x00}},
	{'1', []byte{0x42, 0x7f, 0x40, 0x00}},
	{'2', []byte{0x62, 0x51, 0x49, 0x46, 0x00}},
	{'3', []byte{0x22, 0x41, 0x49, 0x36, 0x00}},
	{'4', []byte{0x18, 0x14, 0x12, 0x7f, 0x00}},
	{'5', []byte{0x27, 0x45, 0x45, 0x39, 0x00}},
	{'6', []byte{0x3e, 0x49, 0x49, 0x30, 0x00}},
	{'7', []byte{0x61, 0x11, 0x09, 0x07, 0x00}},
	{'8', []byte{0x36, 0x49, 0x49, 0x36, 0x00}},
	{'9', []byte{0x06, 0x49, 0x49, 0x3e, 0x00}},
	{':', []byte{0x14, 0x00}},
	{';', []byte{0x20, 0x14, 0x00}},
	{'<', []byte{0x08, 0x14, 0x22, 0x00}},
	{'=', []byte{0x14, 0x14, 0x14, 0x00}},
	{'>', []byte{0x22, 0x14, 0x08, 0x00}},
	{'?', []byte{0x02, 0x59, 0x09, 0x06, 0x00}},
	{'@', []byte{0x3e, 0x49, 0x55, 0x5d, 0x0e, 0x00}},
	{'A', []byte{0x7e, 0x11, 0x11, 0x7e, 0x00}},
	{'B', []byte{0x7f, 0x49, 0x49, 0x36, 0x00}},
	{'C', []byte{0x3e, 0x41, 0x41, 0x22, 0x00}},
	{'D', []byte{0x7f, 0x41, 0x41, 0x3e, 0x00}},
	{'E', []byte{0x7f, 0x49, 0x49, 0x41, 0x00}},
	{'F', []byte{0x7f, 0x09, 0x09, 0x01, 0x00}},
	{'G', []byte{0x3e, 0x41, 0x49, 0x7a, 0x00}},
	{'H', []byte{0x7f, 0x08, 0x08, 0x7f, 0x00}},
	{'I', []byte{0x41, 0x7f, 0x41, 0x00}},
	{'J', []byte{0x30, 0x40, 0x41, 0x3f, 0x00}},
	{'K', []byte{0x7f, 0x08, 0x14, 0x63, 0x00}},
	{'L', []byte{0x7f, 0x40, 0x40, 0x40, 0x00}},
	{'M', []byte{0x7f, 0x02, 0x0c, 0x02, 0x7f, 0x00}},
	{'N', []byte{0x7f, 0x04, 0x08, 0x10, 0x7f, 0x00}},
	{'O', []byte{0x3e, 0x41, 0x41, 0x3e, 0x00}},
	{'P', []byte{0x7f, 0x09, 0x09, 0x06, 0x00}},
	{'Q', []byte{0x3e, 0x41, 0x41, 0xbe, 0x00}},
	{'R', []byte{0x7f, 0x09, 0x09, 0x76, 0x00}},
	{'S', []byte{0x46, 0x49, 0x49, 0x32, 0x00}},
	{'T', []byte{0x01, 0x01, 0x7f, 0x01, 0x01, 0x00}},
	{'U', []byte{0x3f, 0x40, 0x40, 0x3f, 0x00}},
	{'V', []byte{0x0f, 0x30, 0x40, 0x30, 0x0f, 0x00}},
	{'W', []byte{0x3f, 0x40, 0x38, 0x40, 0x3f, 0x00}},
	{'X', []byte{0x63, 0x14, 0x08, 0x14, 0x63, 0x00}},
	{'Y', []byte{0x07, 0x08, 0x70, 0x08, 0x07, 0x00}},
	{'Z', []byte{0x61, 0x51, 0x49, 0x47, 0x00}},
	{'[', []byte{0x7f, 0x41, 0x00}},
	{'\\', []byte{0x01, 0x06, 0x18, 0x60, 0x00}},
	{']', []byte{0x41, 0x7f, 0x00}},
	{'_', []byte{0x40, 0x40, 0x40, 0x40, 0x00}},
	{'`', []byte{0x01, 0x02, 0x00}},
	{'a', []byte{0x20, 0x54, 0x54, 0x78, 0x00}},
	{'b', []byte{0x7f, 0x44, 0x44, 0x38, 0x00}},
	{'c', []byte{0x38, 0x44, 0x44, 0x28, 0x00}},
	{'d', []byte{0x38, 0x44, 0x44, 0x7f, 0x00}},
	{'e', []byte{0x38, 0x54, 0x54, 0x18, 0x00}},
	{'f', []byte{0x04, 0x7e, 0x05, 0x00}},
	{'g', []byte{0x98, 0xa4, 0xa4, 0x78, 0x00}},
	{'h', []byte{0x7f, 0x04, 0x04, 0x78, 0x00}},
	{'i', []byte{0x44, 0x7d, 0x40, 0x00}},
	{'j', []byte{0x40, 0x80, 0x84, 0x7d, 0x00}},
	{'k', []byte{0x7f, 0x10, 0x28, 0x44, 0x00}},
	{'l', []byte{0x41, 0x7f, 0x40, 0x00}},
	{'m', []byte{0x7c, 0x04, 0x7c, 0x04, 0x78, 0x00}},
	{'n', []byte{0x7c, 0x04, 0x04, 0x78, 0x00}},
	{'o', []byte{0x38, 0x44, 0x44, 0x38, 0x00}},
	{'p', []byte{0xfc, 0x24, 0x24, 0x18, 0x00}},
	{'q', []byte{0x18, 0x24, 0x24, 0xfc, 0x00}},
	{'r', []byte{0x7c, 0x08, 0x04, 0x04, 0x00}},
	{'s', []byte{0x48, 0x54, 0x54, 0x24, 0x00}},
	{'t', []byte{0x04, 0x3f, 0x44, 0x00}},
	{'u', []byte{0x3c, 0x40, 0x40, 0x7c, 0x00}},
	{'v', []byte{0x1c, 0x20, 0x40, 0x20, 0x1c, 0x00}},
	{'w', []byte{0x3c, 0x40, 0x3c, 0x40, 0x3c, 0x00}},
	{'x', []byte{0x44, 0x28, 0x10, 0x28, 0x44, 0x00}},
	{'y', []byte{0x9c, 0xa0, 0xa0, 0x7c, 0x00}},
	{'z', []byte{0x64, 0x54, 0x4c, 0x00}},
	{'{', []byte{0x08, 0x36, 0x41, 0x00}},
	{'|', []byte{0x7f, 0x00}},
	{'}', []byte{0x41, 0x36, 0x08, 0x00}},
	{'~', []byte{0x08, 0x04, 0x08, 0x04, 0x00}},
	{'^', []byte{0x02, 0x01, 0x02, 0x00}},
}
