package xorlist

// Ref ссылка на узел внутри аллокатора. Узлы списка хранят не адреса соседей,
// а их Ref, что позволяет держать в узле одно слово связи вместо двух.
type Ref uint

// RefNone отсутствующий узел. Аллокаторы никогда не выдают этого значения.
const RefNone Ref = 0

// combine сворачивание пары соседей в слово связи и обратное извлечение
// соседа по слову связи и другому соседу: операция самообратна.
//
//	combine(prev, next) == link
//	combine(link, prev) == next
//	combine(link, next) == prev
func combine(a, b Ref) Ref {
	return a ^ b
}
