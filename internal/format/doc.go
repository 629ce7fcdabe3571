// Package format печатает исходник felix в каноническом виде поверх
// lossless-дерева.
//
// Назначение: нормализовать пробелы между токенами, сохранив комментарии и
// не больше одной пустой строки между инструкциями.
// Не делает: перенос длинных строк, правку ошибочного кода, IO.
// Зависимости: internal/parser, internal/syntax, internal/ast.
package format
