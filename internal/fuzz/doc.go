// Package fuzztests houses Go fuzz harnesses that exercise the front-end
// (source -> lexer -> parser). Its goal is to smoke test robustness and guard
// against panics, hangs and broken fragments on arbitrary inputs.
//
// Назначение: прогонять произвольные байты через лексер и парсер и проверять
// структурные инварианты фрагментов.
//
// Не делает: генерацию корпусов, запись файлов, выполнение CLI.
package fuzztests
