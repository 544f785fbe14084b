package charset

// Replacement tables for the cleanup fallback chain.

// Sorted by code point. Every target is a single character valid in the
// Latin-1 subset, so the table serves both character sets.
var quickReplacementsFrom = []rune(
	"¨¯¸ÃÅÕÝãåõÿĀāĂăĄąĆćĈĉĊċČčĎďĒēĔĕĖėĘęĚěĜĝĞğĠġĢģĤĥĨĩĪīĬĭĮįİĴĵĶķĹĺĻļĽľŃńŅņŇňŌōŎŏŐőŔŕŖŗŘřŚśŜŝŞşŠšŢţŤťŨũŪūŬŭŮůŰűŲųŴŵŶŷŸŹźŻżŽžƠơƯưǍǎǏǐǑǒǓǔǕǖǗǘǙǚǛǜǞǟǠǡǦǧǨǩǪǫǬǭǰǴǵǸǹǺǻȀȁȂȃȄȅȆȇȈȉȊȋȌȍȎȏȐȑȒȓȔȕȖȗȘșȚțȞȟȦȧȨȩȪȫȬȭȮȯȰȱȲȳ˘˙˚˛˜˝ͺ΄΅ḀḁḂḃḄḅḆḇḈḉḊḋḌḍḎḏḐḑḒḓḔḕḖḗḘḙḚḛḜḝḞḟḠḡḢḣḤḥḦḧḨḩḪḫḬḭḮḯḰḱḲḳḴḵḶḷḸḹḺḻḼḽḾḿṀṁṂṃṄṅṆṇṈṉṊṋṌṍṎṏṐṑṒṓṔṕṖṗṘṙṚṛṜṝṞṟṠṡṢṣṤṥṦṧṨṩṪṫṬṭṮṯṰṱṲṳṴṵṶṷṸṹṺṻṼṽṾṿẀẁẂẃẄẅẆẇẈẉẊẋẌẍẎẏẐẑẒẓẔẕẖẗẘẙẛẠạẢảẤấẦầẨẩẪẫẬậẮắẰằẲẳẴẵẶặẸẹẺẻẼẽẾếỀềỂểỄễỆệỈỉỊịỌọỎỏỐốỒồỔổỖỗỘộỚớỜờỞởỠỡỢợỤụỦủỨứỪừỬửỮữỰựỲỳỴỵỶỷỸỹ᾽᾿῀῁῍῎῏῝῞῟῭΅´῾‗‾Å≠≮≯﹉﹊﹋﹌￣")

var quickReplacementsTo = []rune(
	"   AAOYaaoyAaAaAaCcCcCcCcDdEeEeEeEeEeGgGgGgGgHhIiIiIiIiIJjKkLlLlLlNnNnNnOoOoOoRrRrRrSsSsSsSsTtTtUuUuUuUuUuUuWwYyYZzZzZzOoUuAaIiOoUuUuUuUuUuAaAaGgKkOoOojGgNnAaAaAaEeEeIiIiOoOoRrRrUuUuSsTtHhAaEeOoOoOoOoYy         AaBbBbBbCcDdDdDdDdDdEeEeEeEeEeFfGgHhHhHhHhHhIiIiKkKkKkLlLlLlLlMmMmMmNnNnNnNnOoOoOoOoPpPpRrRrRrRrSsSsSsSsSsTtTtTtTtUuUuUuUuUuVvVvWwWwWwWwWwXxXxYyZzZzZzhtwysAaAaAaAaAaAaAaAaAaAaAaAaEeEeEeEeEeEeEeEeIiIiOoOoOoOoOoOoOoOoOoOoOoOoUuUuUuUuUuUuUuYyYyYyYy                A=<>     ")

// Replacements not covered by Unicode decomposition. Targets may be longer
// than one character or empty.
var additionalReplacements = map[rune]string{
	'Œ': "OE",
	'œ': "oe",
	'Æ': "AE",
	'æ': "ae",
	'Ǣ': "AE",
	'ǣ': "ae",
	'Ǽ': "AE",
	'ǽ': "ae",
	'Ǿ': "O",
	'ǿ': "o",
	'ȸ': "db",
	'ȹ': "qp",
	'Ø': "O",
	'ø': "o",
	'€': "E",
	'^': ".",
	'¡': "! ",
	'¢': "c",
	'¤': " ",
	'¥': "Y",
	'¦': "/",
	'§': "S",
	'©': "(c)",
	'«': "<<",
	'¬': "-",
	'\u00ad': "", // soft hyphen
	'®': "(r)",
	'°': "o",
	'±': "+-",
	'µ': "u",
	'¶': "P",
	'·': "-",
	'»': ">>",
	'¿': "? ",
	'Ð': "D",
	'×': "x",
	'Þ': "TH",
	'ð': "d",
	'þ': "th",
	'Đ': "D",
	'đ': "d",
	'Ħ': "H",
	'ħ': "h",
	'ı': "i",
	'ĸ': "k",
	'Ŀ': "L",
	'ŀ': "l",
	'Ł': "L",
	'ł': "l",
	'ŉ': "n",
	'Ŋ': "N",
	'ŋ': "n",
	'Ŧ': "T",
	'ŧ': "t",
	'⁄': "/", // fraction slash
}
