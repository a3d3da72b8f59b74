package corpus

import "github.com/verte-zerg/typesnip/internal/model"

// Built-in categories in menu order.
const (
	English model.Category = "English"
	Go      model.Category = "Go"
	Rust    model.Category = "Rust"
	Python  model.Category = "Python"
)

// BuiltinCategories returns the built-in categories in menu order.
func BuiltinCategories() []model.Category {
	return []model.Category{English, Go, Rust, Python}
}

// BuiltinSnippets returns the stored samples of a built-in category.
// Samples are returned as stored; use Normalize before typing them.
func BuiltinSnippets(category model.Category) []string {
	switch category {
	case English:
		return englishSnippets
	case Go:
		return goSnippets
	case Rust:
		return rustSnippets
	case Python:
		return pythonSnippets
	default:
		return nil
	}
}

var englishSnippets = []string{
	"the quick brown fox jumps over the lazy dog near the riverbank",
	"practice makes perfect and consistency is the key to mastery",
	"a journey of a thousand miles begins with a single step forward",
	"the only way to do great work is to love what you do every day",
	"simplicity is the ultimate sophistication in both design and code",
	"every expert was once a beginner who refused to give up on learning",
	"typing fast is not about speed alone but about accuracy and rhythm",
	"the best time to plant a tree was twenty years ago the second best time is now",
	"focus on being productive instead of busy and results will follow naturally",
	"do not wait to strike until the iron is hot but make it hot by striking",
}

var goSnippets = []string{
	`
func main() {
    nums := []int{1, 2, 3, 4, 5}
    sum := 0
    for _, n := range nums {
        sum += n
    }
    fmt.Println("sum:", sum)
}
`,
	`
func reverse(s string) string {
    runes := []rune(s)
    for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
        runes[i], runes[j] = runes[j], runes[i]
    }
    return string(runes)
}
`,
	`
type Stack[T any] struct {
    items []T
}

func (s *Stack[T]) Push(v T) {
    s.items = append(s.items, v)
}

func (s *Stack[T]) Pop() (T, bool) {
    var zero T
    if len(s.items) == 0 {
        return zero, false
    }
    v := s.items[len(s.items)-1]
    s.items = s.items[:len(s.items)-1]
    return v, true
}
`,
	`
func wordCount(text string) map[string]int {
    counts := make(map[string]int)
    for _, w := range strings.Fields(text) {
        counts[w]++
    }
    return counts
}
`,
	`
func worker(ctx context.Context, jobs <-chan int, out chan<- int) {
    for {
        select {
        case <-ctx.Done():
            return
        case j, ok := <-jobs:
            if !ok {
                return
            }
            out <- j * j
        }
    }
}
`,
	`
func readLines(path string) ([]string, error) {
    f, err := os.Open(path)
    if err != nil {
        return nil, fmt.Errorf("open %s: %w", path, err)
    }
    defer f.Close()

    var lines []string
    sc := bufio.NewScanner(f)
    for sc.Scan() {
        lines = append(lines, sc.Text())
    }
    return lines, sc.Err()
}
`,
	`
type Shape interface {
    Area() float64
}

type Circle struct{ R float64 }

func (c Circle) Area() float64 { return math.Pi * c.R * c.R }
`,
}

var rustSnippets = []string{
	`fn main() {
    let numbers = vec![1, 2, 3, 4, 5];
    let sum: i32 = numbers.iter().sum();
    println!("Sum: {}", sum);
}`,
	`fn fibonacci(n: u64) -> u64 {
    match n {
        0 => 0,
        1 => 1,
        _ => fibonacci(n - 1) + fibonacci(n - 2),
    }
}`,
	`use std::collections::HashMap;

fn word_count(text: &str) -> HashMap<&str, usize> {
    let mut map = HashMap::new();
    for word in text.split_whitespace() {
        *map.entry(word).or_insert(0) += 1;
    }
    map
}`,
	`struct Stack<T> {
    elements: Vec<T>,
}

impl<T> Stack<T> {
    fn new() -> Self {
        Stack { elements: Vec::new() }
    }

    fn push(&mut self, item: T) {
        self.elements.push(item);
    }

    fn pop(&mut self) -> Option<T> {
        self.elements.pop()
    }
}`,
	`fn is_palindrome(s: &str) -> bool {
    let chars: Vec<char> = s.chars().collect();
    let len = chars.len();
    for i in 0..len / 2 {
        if chars[i] != chars[len - 1 - i] {
            return false;
        }
    }
    true
}`,
	`fn largest<T: PartialOrd>(list: &[T]) -> &T {
    let mut largest = &list[0];
    for item in list {
        if item > largest {
            largest = item;
        }
    }
    largest
}`,
	`fn flatten(nested: Vec<Vec<i32>>) -> Vec<i32> {
    nested.into_iter().flatten().collect()
}

fn main() {
    let data = vec![vec![1, 2], vec![3, 4], vec![5]];
    println!("{:?}", flatten(data));
}`,
	`fn merge_sorted(a: &[i32], b: &[i32]) -> Vec<i32> {
    let mut result = Vec::with_capacity(a.len() + b.len());
    let (mut i, mut j) = (0, 0);
    while i < a.len() && j < b.len() {
        if a[i] <= b[j] { result.push(a[i]); i += 1; }
        else { result.push(b[j]); j += 1; }
    }
    result.extend_from_slice(&a[i..]);
    result.extend_from_slice(&b[j..]);
    result
}`,
}

var pythonSnippets = []string{
	`def fibonacci(n):
    if n <= 1:
        return n
    a, b = 0, 1
    for _ in range(n - 1):
        a, b = b, a + b
    return b`,
	`from collections import Counter

def most_common(words):
    count = Counter(words)
    return count.most_common(3)`,
	`def binary_search(arr, target):
    left, right = 0, len(arr) - 1
    while left <= right:
        mid = (left + right) // 2
        if arr[mid] == target:
            return mid
        elif arr[mid] < target:
            left = mid + 1
        else:
            right = mid - 1
    return -1`,
	`class Stack:
    def __init__(self):
        self.items = []

    def push(self, item):
        self.items.append(item)

    def pop(self):
        return self.items.pop() if self.items else None`,
	`def flatten(nested):
    result = []
    for item in nested:
        if isinstance(item, list):
            result.extend(flatten(item))
        else:
            result.append(item)
    return result`,
	`import functools

def memoize(func):
    cache = {}
    @functools.wraps(func)
    def wrapper(*args):
        if args not in cache:
            cache[args] = func(*args)
        return cache[args]
    return wrapper`,
	`def quicksort(arr):
    if len(arr) <= 1:
        return arr
    pivot = arr[len(arr) // 2]
    left = [x for x in arr if x < pivot]
    middle = [x for x in arr if x == pivot]
    right = [x for x in arr if x > pivot]
    return quicksort(left) + middle + quicksort(right)`,
	`def is_prime(n):
    if n < 2:
        return False
    for i in range(2, int(n ** 0.5) + 1):
        if n % i == 0:
            return False
    return True`,
}
