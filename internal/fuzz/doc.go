// Package fuzztests holds Go fuzz harnesses for the front end
// (source -> lexer -> parser -> sink).
//
// Назначение: прогонять произвольные байты через лексер и парсер и проверять,
// что дерево остаётся lossless, а разбор не паникует и не зависает.
//
// Не делает: генерацию корпусов, запись файлов, выполнение CLI.
package fuzztests
